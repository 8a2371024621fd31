package mazeapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultFinder     = "bfs"
	defaultBoardLimit = 10
	maxBoardLimit     = 100
)

// MazeController manages maze generation and leaderboards.
type MazeController struct {
	mazes    i.MazeService
	searches i.SearchService
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeService, searches i.SearchService) (*MazeController, error) {
	if mazes == nil || searches == nil {
		return nil, errors.New("maze controller: services are required")
	}
	return &MazeController{
		mazes:    mazes,
		searches: searches,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.maze)
		mazes.GET("/:ID/board", mc.board)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.POST("/:ID/regenerate", mc.regenerate)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazes.Generate(ctx.Request.Context(), i.GenerateRequest{
		Width:         request.Width,
		Height:        request.Height,
		Algorithm:     request.Algorithm,
		Seed:          request.Seed,
		ExtraPassages: request.ExtraPassages,
		CreatedBy:     identity.PlayerID(ctx),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(m))
}

// regenerate carves an existing maze again in place.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var request RegenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazes.Regenerate(ctx.Request.Context(), id, request.Algorithm, request.Seed)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// maze returns a stored maze.
func (mc *MazeController) maze(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	m, err := mc.mazes.ByID(id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// board returns the searches on a maze that explored the fewest cells.
func (mc *MazeController) board(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	finder := ctx.DefaultQuery("finder", defaultFinder)
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", strconv.Itoa(defaultBoardLimit)), 10, 64)
	if err != nil || limit <= 0 || limit > maxBoardLimit {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	entries, total, err := mc.searches.Leaderboard(ctx.Request.Context(), id, finder, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &BoardResponse{
		MazeID:  id,
		Finder:  strings.ToLower(finder),
		Total:   total,
		Entries: entries,
	})
}

func newMazeResponse(m *dmn.Maze) *MazeResponse {
	return &MazeResponse{
		Maze:  m,
		ASCII: strings.Join(m.Rows, "\n"),
	}
}

// pathID parses the :ID parameter, answering 400 itself when it is malformed.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidMaze), errors.Is(err, service.ErrInvalidSearch):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound), errors.Is(err, dmn.ErrSearchNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
