package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/storenav/internal/store"
	"github.com/katalvlaran/storenav/narrate"
	"github.com/katalvlaran/storenav/navigator"
	"github.com/katalvlaran/storenav/shoplist"
)

// Message is the envelope of every server reply.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// PlanPayload is sent after cmd:plan.
type PlanPayload struct {
	Items        shoplist.List         `json:"items"`
	Unreachable  shoplist.List         `json:"unreachable,omitempty"`
	Steps        int                   `json:"steps"`
	Instructions []narrate.Instruction `json:"instructions"`
}

// conn is one socket; writes go through send so only the sender goroutine
// touches the connection for writing.
type conn struct {
	ws     *websocket.Conn
	send   chan []byte
	closed chan struct{} // closed when the sender stops
	id     string
}

func (c *conn) reply(typ string, payload any) {
	out, err := json.Marshal(Message{Type: typ, Payload: payload})
	if err != nil {
		out, _ = json.Marshal(Message{Type: "error", Payload: err.Error()})
	}
	select {
	case c.send <- out:
	case <-c.closed:
	}
}

func (c *conn) fail(err error) { c.reply("error", err.Error()) }

// handleSender drains c.send to the socket.
func handleSender(c *conn) {
	defer close(c.closed)
	for mes := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, mes); err != nil {
			return
		}
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()

	c := &conn{ws: ws, send: make(chan []byte, 16), closed: make(chan struct{})}
	go handleSender(c)
	defer func() {
		close(c.send)
		<-c.closed
	}()
	s.log.Info("socket open", "remote", r.RemoteAddr)

	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			s.log.Info("socket closed", "id", c.id, "err", err)
			return
		}
		s.dispatch(r.Context(), c, string(message))
	}
}

func (s *Server) dispatch(ctx context.Context, c *conn, mes string) {
	switch {
	case strings.HasPrefix(mes, "echo:"):
		c.reply("echo", mes[len("echo:"):])

	case strings.HasPrefix(mes, "id:"):
		c.id = strings.TrimSpace(mes[len("id:"):])
		if c.id == "" {
			c.id = uuid.NewString()
		}
		s.log.Debug("socket bound", "id", c.id)
		c.reply("id", c.id)

	case strings.HasPrefix(mes, "cmd:"):
		if c.id == "" {
			c.reply("error", "please set id before command")
			return
		}
		s.command(ctx, c, strings.TrimSpace(mes[len("cmd:"):]))

	case strings.HasPrefix(mes, "scan:"):
		sess := s.session(c.id)
		if sess == nil {
			c.reply("error", "no route planned")
			return
		}
		img, err := base64.StdEncoding.DecodeString(strings.TrimSpace(mes[len("scan:"):]))
		if err != nil {
			c.fail(fmt.Errorf("scan: bad image: %w", err))
			return
		}
		st, err := sess.Scan(ctx, s.confirmer, img)
		if err != nil {
			s.log.Warn("scan failed", "id", c.id, "err", err)
			c.fail(err)
		}
		c.reply("state", st)

	default:
		c.reply("error", "unknown message")
	}
}

func (s *Server) command(ctx context.Context, c *conn, action string) {
	verb, arg, _ := strings.Cut(action, " ")

	if verb == "plan" {
		list := strings.TrimSpace(arg)
		if list == "" {
			list = store.DefaultList
		}
		res, err := s.plan(ctx, list)
		if err != nil {
			c.fail(err)
			if res == nil {
				return
			}
		}
		sess := navigator.NewSession(res)
		s.setSession(c.id, sess)
		c.reply("plan", PlanPayload{
			Items:        res.Items,
			Unreachable:  res.Unreachable,
			Steps:        res.Steps(),
			Instructions: res.Instructions,
		})
		c.reply("state", sess.State())
		return
	}

	sess := s.session(c.id)
	if sess == nil {
		c.reply("error", "no route planned")
		return
	}
	switch verb {
	case "next":
		c.reply("state", sess.Next())
	case "skip":
		c.reply("state", sess.Skip())
	case "status":
		c.reply("state", sess.State())
	case "seek":
		x, y, err := parseXY(arg)
		if err != nil {
			c.fail(err)
			return
		}
		c.reply("state", sess.Seek(x, y))
	default:
		c.reply("error", "unknown command: "+verb)
	}
}

func parseXY(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("format error: cmd:seek <x>,<y>")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("seek: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("seek: %w", err)
	}
	return x, y, nil
}

var rootTemplate = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
<head>
<title>storenav socket test page</title>
<meta charset="utf-8">
<script>
window.addEventListener("load", function(evt) {
    var output = document.getElementById("output");
    var input = document.getElementById("input");
    var ws;
    var print = function(message) {
        var d = document.createElement("div");
        d.textContent = message;
        output.appendChild(d);
    };
    document.getElementById("open").onclick = function(evt) {
        if (ws) { return false; }
        ws = new WebSocket("{{.}}");
        ws.onopen = function(evt) { print("OPEN"); };
        ws.onclose = function(evt) { print("CLOSE"); ws = null; };
        ws.onmessage = function(evt) { print("RECEIVE: " + evt.data); };
        return false;
    };
    document.getElementById("send").onclick = function(evt) {
        if (!ws) { return false; }
        print("SEND: " + input.value);
        ws.send(input.value);
        return false;
    };
});
</script>
</head>
<body>
<p>Send "id:&lt;name&gt;" first, then "cmd:plan", "cmd:next", "cmd:skip", "cmd:status".
<form>
<button id="open">Open</button>
<p><input id="input" type="text" value="id:shopper" size="60">
<button id="send">Send</button>
</form>
<div id="output"></div>
</body>
</html>
`))

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := rootTemplate.Execute(w, "ws://"+r.Host+"/w"); err != nil {
		s.log.Warn("render home", "err", err)
	}
}
