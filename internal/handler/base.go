package handler

import (
	"reflect"
	"time"

	"github.com/devanap/fabrismart-full/internal/middleware"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is embedded by every concrete handler (ProductHandler,
// HealthHandler, ...) to reach config, logger and store.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it gets an already validated payload and
// returns the response value. Req is a pointer (*model.CreateProductRequest)
// because echo binds in place.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and names the operation for
// logs and traces. AddAttributes is called with a nil result before the
// handler runs and with the real result after.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// AddAttributes is empty: EnhanceTracing already records the status.
func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {}

// StatusJSONResponseHandler writes JSON with a status chosen from the result,
// for routes whose outcome decides the code (queued vs written backups).
type StatusJSONResponseHandler struct {
	status func(result interface{}) int
}

func (h StatusJSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status(result), result)
}

func (h StatusJSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h StatusJSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {}

// downloadNameKey holds a per-request filename set through SetDownloadName.
const downloadNameKey = "download_name"

// SetDownloadName overrides the attachment filename of a HandleFile route
// for the current request.
func SetDownloadName(c echo.Context, name string) {
	c.Set(downloadNameKey, name)
}

// FileResponseHandler sends the []byte result as an attachment.
type FileResponseHandler struct {
	status      int
	filename    string
	contentType string
}

func (h FileResponseHandler) Handle(c echo.Context, result interface{}) error {
	data := result.([]byte)

	filename := h.filename
	if name, ok := c.Get(downloadNameKey).(string); ok && name != "" {
		filename = name
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)

	return c.Blob(h.status, h.contentType, data)
}

func (h FileResponseHandler) GetOperation() string {
	return "handler_file"
}

func (h FileResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn == nil {
		return
	}
	txn.AddAttribute("file.content_type", h.contentType)
	if data, ok := result.([]byte); ok {
		txn.AddAttribute("file.size_bytes", len(data))
	}
}

// newRequest returns a zeroed payload of the same type as proto.
//
// Routes are registered with one prototype value; binding into it directly
// would share state between concurrent requests and leak fields absent from
// a later body.
func newRequest[Req validation.Validatable](proto Req) Req {
	t := reflect.TypeOf(proto)
	if t == nil || t.Kind() != reflect.Pointer {
		return proto
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// requestTrace records pipeline phases on the New Relic transaction. A nil
// txn (New Relic off) makes every method a no-op.
type requestTrace struct {
	txn *newrelic.Transaction
}

func (t requestTrace) phase(name, status string, took time.Duration) {
	if t.txn == nil {
		return
	}
	t.txn.AddAttribute(name+".status", status)
	t.txn.AddAttribute(name+".duration_ms", took.Milliseconds())
}

func (t requestTrace) fail(err error) {
	if t.txn != nil {
		t.txn.NoticeError(nrpkgerrors.Wrap(err))
	}
}

// handleRequest is the shared execution pipeline for all typed routes:
// bind, sanitize and validate req, run handler, then write its result
// through responseHandler. Each phase is timed, logged on the request
// logger and recorded on the New Relic transaction. Errors are returned
// untouched for GlobalErrorHandler to render.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	trace := requestTrace{txn: newrelic.FromContext(c.Request().Context())}
	if trace.txn != nil {
		trace.txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(trace.txn, nil)
	}

	fields := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route)
	if fileHandler, ok := responseHandler.(FileResponseHandler); ok {
		fields = fields.Str("content_type", fileHandler.contentType)
	}
	logger := fields.Logger()

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		took := time.Since(validationStart)
		logger.Warn().Err(err).Dur("validation_duration", took).Msg("request validation failed")
		trace.fail(err)
		trace.phase("validation", "failed", took)
		return err
	}
	validationDuration := time.Since(validationStart)
	trace.phase("validation", "success", validationDuration)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		trace.fail(err)
		trace.phase("handler", "error", handlerDuration)
		return err
	}

	trace.phase("handler", "success", handlerDuration)
	if trace.txn != nil {
		trace.txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
		responseHandler.AddAttributes(trace.txn, result)
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error handling, logging,
// metrics and tracing, and writes its result as JSON with status.
//
//	api.POST("/products", handler.Handle(h.Handler, h.Create, http.StatusCreated, &model.CreateProductRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleWithStatus is Handle for routes whose status depends on the result.
func HandleWithStatus[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status func(Res) int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, StatusJSONResponseHandler{status: func(result interface{}) int {
			return status(result.(Res))
		}})
	}
}

// HandleFile wraps a handler that returns file bytes ([]byte).
//
// filename is the default attachment name; SetDownloadName overrides it.
func HandleFile[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, []byte],
	status int,
	req Req,
	filename string,
	contentType string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, FileResponseHandler{
			status:      status,
			filename:    filename,
			contentType: contentType,
		})
	}
}
