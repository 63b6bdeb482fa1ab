package handler

import (
	"net/http"

	"player-auction/services/auction/helpers"
	"player-auction/utils"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	service AuctionServiceInterface
}

func NewBidHandler(service AuctionServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// BidActionHandler handles POST /api/bids with action place or finalize
func (h *BidHandler) BidActionHandler(c *gin.Context) {
	const name = "BidActionHandler"

	token, ok := helpers.RequireBearerToken(c, name)
	if !ok {
		return
	}

	var req helpers.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	switch req.Action {
	case helpers.ActionPlace:
		player, err := h.service.PlaceBid(c.Request.Context(), token, req.PlayerID, req.BidAmount)
		if err != nil {
			helpers.RespondError(c, name, err, map[string]any{
				"action":    req.Action,
				"player_id": req.PlayerID,
				"amount":    req.BidAmount,
			})
			return
		}
		utils.JSONResponse(c, http.StatusOK, helpers.NewPlayerResponse(player), "bid placed successfully")
		helpers.LogSuccess(name, "bid placed successfully", map[string]any{
			"player_id": player.ID,
			"amount":    player.CurrentBid,
		})

	case helpers.ActionFinalize:
		player, err := h.service.FinalizeSale(c.Request.Context(), token, req.PlayerID)
		if err != nil {
			helpers.RespondError(c, name, err, map[string]any{
				"action":    req.Action,
				"player_id": req.PlayerID,
			})
			return
		}
		utils.JSONResponse(c, http.StatusOK, helpers.NewPlayerResponse(player), "player sale finalized")
		helpers.LogSuccess(name, "player sale finalized", map[string]any{
			"player_id": player.ID,
			"amount":    player.CurrentBid,
		})

	default:
		helpers.HandleInvalidAction(c, name, req.Action)
	}
}
