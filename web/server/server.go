package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-spectral-raytracer/pkg/renderer"
	"github.com/df07/go-spectral-raytracer/pkg/scene"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Limits on what a single request may ask for
const (
	maxImageSize       = 2048
	maxSamplesPerPixel = 4096
)

// Server renders preview frames of the built-in scenes over HTTP
type Server struct {
	port    int
	echo    *echo.Echo
	console *Console
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, console: NewConsole(200)}

	e := echo.New()
	e.HideBanner = true
	e.Use(corsMiddleware)
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/inspect", s.handleInspect)
	e.GET("/api/console", s.handleConsole)
	e.Static("/", "static")
	s.echo = e
	return s
}

// Handler exposes the router, e.g. for httptest
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server
func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%d", s.port))
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

func jsonError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SceneResponse describes one scene for /api/scenes
type SceneResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Animated    bool   `json:"animated"`
}

func (s *Server) handleScenes(c echo.Context) error {
	var scenes []SceneResponse
	for _, info := range scene.ListScenes() {
		scenes = append(scenes, SceneResponse{
			ID:          info.ID,
			DisplayName: info.DisplayName,
			Description: info.Description,
			Animated:    info.Animated,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scenes":      scenes,
		"totalFrames": scene.FluorescenceFrames,
	})
}

// RenderRequest holds the query parameters shared by /api/render and /api/inspect
type RenderRequest struct {
	Scene             string
	Width             int
	Height            int
	SamplesPerPixel   int
	MaxDepth          int
	Frame             int
	Seed              int64
	Format            string
	Wavelengths       string
	WavelengthSamples int
}

// parseRenderRequest reads and validates the query string
func parseRenderRequest(c echo.Context) (RenderRequest, error) {
	req := RenderRequest{
		Scene:             "cornell",
		Width:             200,
		SamplesPerPixel:   10,
		MaxDepth:          8,
		Seed:              42,
		Format:            string(renderer.FormatPNG),
		Wavelengths:       spectrum.StrategyUniform.String(),
		WavelengthSamples: spectrum.DefaultSampleSize,
	}

	err := echo.QueryParamsBinder(c).
		String("scene", &req.Scene).
		Int("width", &req.Width).
		Int("height", &req.Height).
		Int("spp", &req.SamplesPerPixel).
		Int("depth", &req.MaxDepth).
		Int("frame", &req.Frame).
		Int64("seed", &req.Seed).
		String("format", &req.Format).
		String("wavelengths", &req.Wavelengths).
		Int("wavelengthSamples", &req.WavelengthSamples).
		BindError()
	if err != nil {
		return req, err
	}

	if req.Height == 0 {
		req.Height = req.Width
	}
	if req.Width <= 0 || req.Width > maxImageSize || req.Height <= 0 || req.Height > maxImageSize {
		return req, errors.Errorf("image size %dx%d outside [1, %d]", req.Width, req.Height, maxImageSize)
	}
	if req.SamplesPerPixel <= 0 || req.SamplesPerPixel > maxSamplesPerPixel {
		return req, errors.Errorf("samples per pixel %d outside [1, %d]", req.SamplesPerPixel, maxSamplesPerPixel)
	}
	if req.MaxDepth <= 0 {
		return req, errors.Errorf("depth must be positive, got %d", req.MaxDepth)
	}
	return req, nil
}

// options converts the request into scene options
func (req RenderRequest) options() (scene.Options, error) {
	strategy, err := spectrum.ParseStrategy(req.Wavelengths)
	if err != nil {
		return scene.Options{}, err
	}
	opts := scene.DefaultOptions()
	opts.AspectRatio = float64(req.Width) / float64(req.Height)
	opts.Frame = req.Frame
	opts.Seed = req.Seed
	opts.Integrator.MaxDepth = req.MaxDepth
	opts.Wavelengths = strategy
	opts.WavelengthSamples = req.WavelengthSamples
	return opts, nil
}

func (req RenderRequest) buildScene() (*scene.Scene, error) {
	opts, err := req.options()
	if err != nil {
		return nil, err
	}
	return scene.Create(req.Scene, opts)
}

// handleRender renders one frame and returns the encoded image
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	format := renderer.Format(req.Format)
	contentType, ok := contentTypes[format]
	if !ok {
		return jsonError(c, http.StatusBadRequest, errors.Errorf("unknown image format %q", req.Format))
	}
	sceneObj, err := req.buildScene()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	logger := s.console.Logger(fmt.Sprintf("%s#%d", req.Scene, req.Frame))
	config := renderer.SamplingConfig{
		SamplesPerPixel: req.SamplesPerPixel,
		Seed:            req.Seed,
		Frame:           req.Frame,
	}
	framebuffer, stats := renderer.NewRaytracer(sceneObj, req.Width, req.Height, config, logger).Render()

	var buf bytes.Buffer
	if err := renderer.Encode(&buf, framebuffer.Image(), format); err != nil {
		return jsonError(c, http.StatusInternalServerError, err)
	}

	header := c.Response().Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	header.Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

var contentTypes = map[renderer.Format]string{
	renderer.FormatPNG:  "image/png",
	renderer.FormatBMP:  "image/bmp",
	renderer.FormatTIFF: "image/tiff",
}

// handleConsole returns the most recent render log messages
func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}
