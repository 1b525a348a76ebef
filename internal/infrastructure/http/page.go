package httpserver

import (
	"html/template"
	"net/http"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = indexTemplate.Execute(w, indexData{
		PollMs: s.pollMs,
		Symbol: r.URL.Query().Get("symbol"),
	})
}

type indexData struct {
	PollMs int64
	Symbol string
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <title>spreadwatch</title>
  <style>
    body { background: #0b0e11; color: #c8d1d9; font-family: "SFMono-Regular", Menlo, Consolas, monospace; margin: 2rem; }
    input { background: #161b22; color: #c8d1d9; border: 1px solid #2d333b; padding: 4px 8px; font: inherit; text-transform: uppercase; }
    table { border-collapse: collapse; margin-top: 1rem; }
    td, th { padding: 2px 14px; text-align: right; white-space: pre; }
    th { color: #768390; font-weight: normal; text-align: left; }
    .up { color: #3fb950; }
    .down { color: #f85149; }
    .muted { color: #768390; }
    #debug { margin-top: 1rem; color: #768390; font-size: 0.85em; }
    #deposit.closed { color: #f85149; }
    #deposit.open { color: #3fb950; }
  </style>
</head>
<body>
  <div>
    symbol: <input id="symbol" value="{{.Symbol}}" size="8" />
    <span id="deposit"></span>
  </div>
  <table id="rows"></table>
  <div id="debug"></div>
  <div id="sys" class="muted"></div>
  <script>
    const token = new URLSearchParams(location.search).get("token") || "";
    const input = document.getElementById("symbol");
    let lastResolved = "";

    function spread(price, mexc) {
      if (!price || !mexc) return "";
      const pct = (price - mexc) / mexc * 100;
      const cls = pct >= 0 ? "up" : "down";
      return '<span class="' + cls + '">' + pct.toFixed(2) + '%</span>';
    }

    async function refresh() {
      const sym = input.value.trim().toUpperCase();
      if (!sym) return;
      let data;
      try {
        const res = await fetch("/api/all?symbol=" + encodeURIComponent(sym) + "&token=" + encodeURIComponent(token));
        data = await res.json();
      } catch (e) {
        return;
      }
      if (!data.ok) return;

      let html = "<tr><th>mexc</th><td>" + data.mexcFormatted + "</td><td></td></tr>";
      for (const [venue, price] of Object.entries(data.prices)) {
        if (!price) continue; // 0 means unavailable, drop the row
        html += "<tr><th>" + venue + "</th><td>" + data.pricesFormatted[venue] + "</td><td>" + spread(price, data.mexc) + "</td></tr>";
      }
      document.getElementById("rows").innerHTML = html;

      const dep = document.getElementById("deposit");
      dep.textContent = data.depositOpen ? "deposits open" : "deposits closed";
      dep.className = data.depositOpen ? "open" : "closed";

      if (data.sys) {
        document.getElementById("sys").textContent =
          data.sys.ip + "  cpu " + data.sys.cpu + "%  ram " + data.sys.ram + "%";
      }

      if (sym !== lastResolved) {
        lastResolved = sym;
        resolve(sym);
      }
    }

    async function resolve(sym) {
      const dbg = document.getElementById("debug");
      try {
        const res = await fetch("/api/resolve?symbol=" + encodeURIComponent(sym) + "&token=" + encodeURIComponent(token));
        const data = await res.json();
        if (data.ok) {
          dbg.innerHTML = data.chain + " <a href='" + data.url + "'>" + data.addr + "</a>";
        } else {
          dbg.textContent = data.error || "no on-chain pair";
        }
      } catch (e) {
        dbg.textContent = "resolve failed";
      }
    }

    input.addEventListener("change", () => { lastResolved = ""; refresh(); });
    refresh();
    setInterval(refresh, {{.PollMs}});
  </script>
</body>
</html>`
