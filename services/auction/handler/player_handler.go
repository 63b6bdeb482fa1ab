package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"player-auction/internal/auctionerrors"
	model "player-auction/internal/models"
	"player-auction/services/auction/helpers"
	"player-auction/utils"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	service AuctionServiceInterface
}

func NewPlayerHandler(service AuctionServiceInterface) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// ListPlayersHandler handles GET /api/players?status=all|unsold|sold
func (h *PlayerHandler) ListPlayersHandler(c *gin.Context) {
	const name = "ListPlayersHandler"

	raw := c.Query("status")
	status, ok := model.ParsePlayerStatus(raw)
	if !ok {
		helpers.RespondError(c, name, fmt.Errorf("%w - unknown status %q", auctionerrors.ErrInvalidInput, raw), nil)
		return
	}

	players, err := h.service.ListPlayers(c.Request.Context(), status)
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"status": status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPlayerResponses(players), "players retrieved successfully")
	helpers.LogSuccess(name, "players retrieved successfully", map[string]any{
		"status": status,
		"count":  len(players),
	})
}

// GetPlayerHandler handles GET /api/players/:id
func (h *PlayerHandler) GetPlayerHandler(c *gin.Context) {
	const name = "GetPlayerHandler"

	playerID := c.Param("id")
	player, err := h.service.GetPlayer(c.Request.Context(), playerID)
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"player_id": playerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPlayerResponse(player), "player retrieved successfully")
}

// GetPlayerBidsHandler handles GET /api/players/:id/bids
func (h *PlayerHandler) GetPlayerBidsHandler(c *gin.Context) {
	const name = "GetPlayerBidsHandler"

	playerID := c.Param("id")
	bids, err := h.service.BidsForPlayer(c.Request.Context(), playerID)
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"player_id": playerID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess(name, "bids retrieved successfully", map[string]any{
		"player_id": playerID,
		"count":     len(bids),
	})
}

// CreatePlayerHandler handles POST /api/players. An empty body generates a random player.
func (h *PlayerHandler) CreatePlayerHandler(c *gin.Context) {
	const name = "CreatePlayerHandler"

	token, ok := helpers.RequireBearerToken(c, name)
	if !ok {
		return
	}

	var req helpers.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.HandleBindError(c, name, err)
		return
	}

	var (
		player model.Player
		err    error
	)
	if req.IsEmpty() {
		player, err = h.service.GeneratePlayer(c.Request.Context(), token)
	} else {
		player, err = h.service.CreatePlayer(c.Request.Context(), token, req.Name, model.PlayerRole(req.Role), req.BasePrice)
	}
	if err != nil {
		helpers.RespondError(c, name, err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewPlayerResponse(player), "player created successfully")
	helpers.LogSuccess(name, "player created", map[string]any{
		"player_id":  player.ID,
		"name":       player.Name,
		"base_price": player.BasePrice,
	})
}
