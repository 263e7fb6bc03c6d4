package http

import "net/http"

// handleIndex serves the embedded operator page. The page is a static
// shell that drives the JSON API from the browser, so it stays outside the
// password check; every API call it makes is still authenticated.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!doctype html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>autopress</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
h1 { font-size: 1.4rem; }
li { margin: .4rem 0; }
.invalid { color: #999; }
.err { color: #c00; white-space: pre-wrap; }
button { margin-left: .5rem; }
#out { white-space: pre-wrap; background: #f6f6f6; padding: .5rem; }
</style>
</head>
<body>
<h1>autopress</h1>
<p>
<input id="pw" type="password" placeholder="앱 비밀번호">
<button onclick="loadFolders()">초안 불러오기</button>
<button onclick="loadHistory()">발행 기록</button>
</p>
<ul id="folders"></ul>
<div id="out"></div>
<script>
function headers() {
  var h = {"Content-Type": "application/json"};
  var pw = document.getElementById("pw").value;
  if (pw) h["X-App-Password"] = pw;
  return h;
}
function show(data) {
  document.getElementById("out").textContent = JSON.stringify(data, null, 2);
}
function loadFolders() {
  fetch("/api/folders", {headers: headers()}).then(function (r) { return r.json(); }).then(function (data) {
    if (!data.ok) { show(data); return; }
    var ul = document.getElementById("folders");
    ul.innerHTML = "";
    data.folders.forEach(function (f) {
      var li = document.createElement("li");
      if (f.valid) {
        li.textContent = f.name + " (키워드: " + f.focus_keyword + ")";
        var btn = document.createElement("button");
        btn.textContent = "발행";
        btn.onclick = function () { publish(f.name); };
        li.appendChild(btn);
      } else {
        li.className = "invalid";
        li.textContent = f.name + " — " + (f.errors || []).join(", ");
      }
      ul.appendChild(li);
    });
  });
}
function publish(name) {
  if (!confirm(name + " 폴더를 발행할까요?")) return;
  fetch("/api/publish", {
    method: "POST",
    headers: headers(),
    body: JSON.stringify({folder: name}),
  }).then(function (r) { return r.json(); }).then(show);
}
function loadHistory() {
  fetch("/api/history", {headers: headers()}).then(function (r) { return r.json(); }).then(show);
}
</script>
</body>
</html>
`
