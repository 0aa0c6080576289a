package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"na15"
	"na15/config"
	"na15/debug"
	"na15/kinetics"
)

// MaxSweepPoints 单次网页扫描的最大点数
const MaxSweepPoints = 100000

// server 网页服务，参数表在服务期间只读
type server struct {
	scheme *kinetics.Scheme
	cfg    *config.Config
}

// NewRouter 注册全部路由
func NewRouter(ch *na15.Channel, cfg *config.Config) *mux.Router {
	s := &server{scheme: ch.Scheme, cfg: cfg}
	r := mux.NewRouter()
	r.HandleFunc("/api/steady", s.steady).Methods(http.MethodGet)
	r.HandleFunc("/api/sweep", s.sweepJSON).Methods(http.MethodGet)
	r.HandleFunc("/api/params", s.params).Methods(http.MethodGet)
	r.HandleFunc("/chart", s.chart).Methods(http.MethodGet)
	r.HandleFunc("/plot.png", s.plot).Methods(http.MethodGet)
	r.Handle("/", http.RedirectHandler("/chart", http.StatusFound))
	return r
}

func newServeCmd(e *env) *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve steady states, sweeps and charts over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ch, err := e.load()
			if err != nil {
				return err
			}
			listener, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Serve.Port))
			if err != nil {
				return err
			}
			url := fmt.Sprintf("http://localhost:%d/", listener.Addr().(*net.TCPAddr).Port)
			fmt.Fprintf(cmd.ErrOrStderr(), "Serving na15 steady states with %s\n", url)
			if open {
				if err := browser.OpenURL(url); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Cannot open browser: %v\n", err)
				}
			}
			return http.Serve(listener, NewRouter(ch, cfg))
		},
	}
	cmd.Flags().Int("port", 0, "listening port, 0 picks a free one")
	cmd.Flags().BoolVar(&open, "open", false, "open the chart in a browser")
	e.bind(cmd.Flags().Lookup("port"), "serve.port")
	return cmd
}

// queryFloat 读取查询参数，缺省时返回 def
func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("参数 %s 无效: %q", name, s)
	}
	return x, nil
}

// fail 按错误类型返回状态码
func fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, kinetics.ErrSingular) {
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fail(w, err)
	}
}

func (s *server) steady(w http.ResponseWriter, r *http.Request) {
	v, err := queryFloat(r, "v", s.cfg.Holding)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	celsius, err := queryFloat(r, "celsius", s.cfg.Celsius)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	occ, err := s.scheme.SteadyState(v, celsius)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, newSteadyResult(v, celsius, occ))
}

// sweep 按查询参数扫描，出错时已写入响应
func (s *server) sweep(w http.ResponseWriter, r *http.Request) (*debug.Record, bool) {
	sw := s.cfg.Sweep
	celsius := s.cfg.Celsius
	var err error
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"start", &sw.Start},
		{"end", &sw.End},
		{"step", &sw.Step},
		{"celsius", &celsius},
	} {
		if *p.dst, err = queryFloat(r, p.name, *p.dst); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
	}
	n := (sw.End - sw.Start) / sw.Step
	if sw.Step == 0 || math.IsNaN(n) || n < 0 || n > MaxSweepPoints {
		http.Error(w, fmt.Sprintf("扫描区间无效: [%g, %g) 步长 %g", sw.Start, sw.End, sw.Step), http.StatusBadRequest)
		return nil, false
	}
	list := &debug.Record{}
	ch := &na15.Channel{Scheme: s.scheme, Debug: list}
	if err := ch.Sweep(sw.Start, sw.End, sw.Step, celsius, nil); err != nil {
		fail(w, err)
		return nil, false
	}
	return list, true
}

func (s *server) sweepJSON(w http.ResponseWriter, r *http.Request) {
	if list, ok := s.sweep(w, r); ok {
		writeJSON(w, list)
	}
}

func (s *server) chart(w http.ResponseWriter, r *http.Request) {
	if list, ok := s.sweep(w, r); ok {
		chart := &debug.Charts{Record: *list}
		chart.Handler(w, r)
	}
}

func (s *server) plot(w http.ResponseWriter, r *http.Request) {
	list, ok := s.sweep(w, r)
	if !ok {
		return
	}
	p := &debug.Plot{Record: *list}
	w.Header().Set("Content-Type", "image/png")
	if err := p.Render(w); err != nil {
		fail(w, err)
	}
}

func (s *server) params(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	ch := &na15.Channel{Scheme: s.scheme}
	if err := ch.ExportWriter(w); err != nil {
		fail(w, err)
	}
}
