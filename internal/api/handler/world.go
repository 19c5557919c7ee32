package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jhooc77/gringotts/internal/api/request"
	"github.com/jhooc77/gringotts/internal/api/response"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/sched"
	"github.com/jhooc77/gringotts/internal/world"
)

// WorldHandler handles world administration endpoints: player sessions and
// container blocks. World state is confined to the designated goroutine, so
// every mutation is scheduled through the executor.
type WorldHandler struct {
	world   *world.World
	exec    *sched.Executor
	timeout time.Duration
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(w *world.World, exec *sched.Executor, timeout time.Duration) *WorldHandler {
	return &WorldHandler{
		world:   w,
		exec:    exec,
		timeout: timeout,
	}
}

// Join handles POST /api/v1/world/players/{player_id}/join
func (h *WorldHandler) Join(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])
	if playerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Location.World == "" {
		WriteError(w, NewInvalidRequestError("location.world is required"))
		return
	}
	loc := locationFromRequest(req.Location)

	f := sched.Run(h.exec, r.Context(), func(_ context.Context) (struct{}, error) {
		h.world.Join(playerID, loc)
		return struct{}{}, nil
	})
	if _, err := f.Wait(h.timeout); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Leave handles POST /api/v1/world/players/{player_id}/leave
func (h *WorldHandler) Leave(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])
	if playerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	f := sched.Run(h.exec, r.Context(), func(_ context.Context) (struct{}, error) {
		h.world.Leave(playerID)
		return struct{}{}, nil
	})
	if _, err := f.Wait(h.timeout); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// PlaceContainer handles POST /api/v1/world/containers
func (h *WorldHandler) PlaceContainer(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Location.World == "" {
		WriteError(w, NewInvalidRequestError("location.world is required"))
		return
	}
	loc := locationFromRequest(req.Location)

	f := sched.Run(h.exec, r.Context(), func(_ context.Context) (struct{}, error) {
		h.world.PlaceContainer(loc, world.ContainerSize)
		return struct{}{}, nil
	})
	if _, err := f.Wait(h.timeout); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.LocationResponse{
		World: loc.World,
		X:     loc.X,
		Y:     loc.Y,
		Z:     loc.Z,
	})
}

func locationFromRequest(loc request.LocationRequest) model.Location {
	return model.Location{World: loc.World, X: loc.X, Y: loc.Y, Z: loc.Z}
}
