package mazeapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	stepEvent = "step"
	doneEvent = "done"
)

// SearchController drives step-wise searches.
type SearchController struct {
	searches i.SearchService
}

// NewSearchController initializes a SearchController.
func NewSearchController(searches i.SearchService) (*SearchController, error) {
	if searches == nil {
		return nil, errors.New("search controller: search service is required")
	}
	return &SearchController{searches: searches}, nil
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *SearchController) RegisterProtected(route *gin.RouterGroup) {
	searches := route.Group("/searches")
	{
		searches.POST("", sc.start)
		searches.GET("/:ID", sc.snapshot)
		searches.POST("/:ID/step", sc.step)
		searches.POST("/:ID/run", sc.run)
		searches.POST("/:ID/reset", sc.reset)
		searches.GET("/:ID/stream", sc.stream)
		searches.DELETE("/:ID", sc.delete)
	}
}

// start creates an idle search on a stored maze.
func (sc *SearchController) start(ctx *gin.Context) {
	var request StartSearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := sc.searches.Start(ctx.Request.Context(), request.MazeID, request.Finder)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

func (sc *SearchController) snapshot(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	s, err := sc.searches.Snapshot(id)
	respond(ctx, s, err)
}

func (sc *SearchController) step(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	s, err := sc.searches.Step(ctx.Request.Context(), id)
	respond(ctx, s, err)
}

func (sc *SearchController) run(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	s, err := sc.searches.Run(ctx.Request.Context(), id)
	respond(ctx, s, err)
}

func (sc *SearchController) reset(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	s, err := sc.searches.Reset(id)
	respond(ctx, s, err)
}

func (sc *SearchController) delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := sc.searches.Delete(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// stream sends one server-sent event per step until the search finishes or
// the client goes away. The final snapshot is sent as a "done" event.
func (sc *SearchController) stream(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	speed := 1.0
	if raw, ok := ctx.GetQuery("speed"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "speed must be a positive number"})
			return
		}
		speed = v
	}

	// Fail before the event stream starts so the client gets a plain status.
	if _, err := sc.searches.Snapshot(id); err != nil {
		writeError(ctx, err)
		return
	}

	steps := make(chan *dmn.Search)
	result := make(chan error, 1)
	reqCtx := ctx.Request.Context()
	var final *dmn.Search
	go func() {
		defer close(steps)
		s, err := sc.searches.Stream(reqCtx, id, speed, func(s *dmn.Search) error {
			select {
			case steps <- s:
				return nil
			case <-reqCtx.Done():
				return reqCtx.Err()
			}
		})
		final = s
		result <- err
	}()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Stream(func(w io.Writer) bool {
		s, ok := <-steps
		if !ok {
			return false
		}
		ctx.SSEvent(stepEvent, s)
		return true
	})

	if err := <-result; err == nil && final != nil {
		ctx.SSEvent(doneEvent, final)
		ctx.Writer.Flush()
	}
}

func respond(ctx *gin.Context, s *dmn.Search, err error) {
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}
