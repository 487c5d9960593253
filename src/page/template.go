package page

import "html/template"

// pageTpl is the full infographic document. The header and the export
// button are the page chrome; both carry ids so the capture script and the
// headless rasterizer can hide them before taking the screenshot.
var pageTpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<script src="https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"></script>
<script src="https://cdn.jsdelivr.net/npm/html2canvas@1.4.1/dist/html2canvas.min.js"></script>
<style>
    body { margin: 0; background: #fafafc; font-family: "Segoe UI", Helvetica, Arial, sans-serif; }
    #header { text-align: center; padding: 28px 0 8px; }
    #header h1 { margin: 0; font-size: 28px; color: #2b2b33; }
    #header p { margin: 6px 0 0; color: #6e6e78; }
    .chart { background: #ffffff; border-radius: 6px; margin: 18px auto; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
    #export-bar { text-align: center; padding: 12px 0 32px; }
    #export-btn { font-size: 15px; padding: 10px 22px; border: none; border-radius: 4px;
                  background: #3674d9; color: #ffffff; cursor: pointer; }
    #export-btn:disabled { background: #9bb8e8; cursor: default; }
</style>
</head>
<body>
<div id="header">
    <h1>{{ .Title }}</h1>
    <p>Qubit growth, platform readiness and algorithmic speedups at a glance</p>
</div>
{{ range .Snippets }}{{ . }}{{ end }}
<div id="export-bar">
    <button id="export-btn">Export PNG</button>
</div>
<script type="text/javascript">
(function () {
    "use strict";
    var btn = document.getElementById('export-btn');
    var chrome = [document.getElementById('header'), btn];

    function setChromeVisible(visible) {
        chrome.forEach(function (el) {
            if (el) { el.style.visibility = visible ? '' : 'hidden'; }
        });
    }

    function download(canvas) {
        var a = document.createElement('a');
        a.download = '{{ .Filename }}';
        a.href = canvas.toDataURL('image/png');
        a.click();
    }

    btn.addEventListener('click', function () {
        if (btn.disabled) { return; }
        btn.disabled = true;
        setChromeVisible(false);
        window.scrollTo(0, 0);
        html2canvas(document.body, {
            scale: 2,
            width: document.body.scrollWidth,
            height: document.body.scrollHeight,
            backgroundColor: '#fafafc'
        }).then(function (canvas) {
            setChromeVisible(true);
            btn.disabled = false;
            download(canvas);
        }).catch(function (err) {
            setChromeVisible(true);
            btn.disabled = false;
            console.error('infographic capture failed:', err);
        });
    });
})();
</script>
</body>
</html>
`))
