package dashboard

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const skeletonCards = 6

// Server renders the dashboard page and accepts its form posts. Loads run
// in the background; the page refreshes itself until they finish.
type Server struct {
	dash   *Dashboard
	router *gin.Engine
	run    func(func())
}

func NewServer(dash *Dashboard) *Server {
	router := gin.Default()

	s := &Server{
		dash:   dash,
		router: router,
		run:    func(f func()) { go f() },
	}

	router.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"),
	))

	router.GET("/", s.handleIndex)
	router.POST("/date", s.handleDate)
	router.POST("/source", s.handleSource)
	router.POST("/refresh", s.handleRefresh)
	router.GET("/state", s.handleState)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

var templateFuncs = template.FuncMap{
	"clock": func(t time.Time) string { return t.Format("3:04:05 PM") },
	"skeletons": func() []int {
		return make([]int, skeletonCards)
	},
}

type pageData struct {
	State
	Stats      Stats
	Refreshing bool
}

func (s *Server) handleIndex(c *gin.Context) {
	st := s.dash.State()
	c.HTML(http.StatusOK, "dashboard.html", pageData{
		State:      st,
		Stats:      st.Stats(),
		Refreshing: st.Loading || len(st.SummaryLoading) > 0,
	})
}

func (s *Server) handleDate(c *gin.Context) {
	date := c.PostForm("date")
	if date != "" && date != s.dash.State().SelectedDate {
		s.run(func() { s.dash.SelectDate(context.Background(), date) })
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleSource(c *gin.Context) {
	useMock := c.PostForm("source") == "mock"
	if useMock != s.dash.State().UseMockData {
		s.run(func() { s.dash.SetMockData(context.Background(), useMock) })
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleRefresh(c *gin.Context) {
	if !s.dash.State().Loading {
		s.run(func() { s.dash.Load(context.Background()) })
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.dash.State())
}
