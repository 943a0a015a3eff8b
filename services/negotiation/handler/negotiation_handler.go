package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/services/negotiation/helpers"
	"resale-negotiation/utils"
)

type NegotiationServiceInterface interface {
	OpenOrAppend(itemID, buyerID, message string) (model.Thread, error)
	PostMessage(threadID, senderID, body string) (model.Thread, error)
	MarkRead(threadID, readerID string) error
	Close(threadID, requesterID string) error
	GetThreadForUser(threadID, userID string) (model.Thread, error)
	GetThreadsForUser(userID string) ([]model.Thread, error)
}

type NegotiationHandler struct {
	service NegotiationServiceInterface
}

func NewNegotiationHandler(service NegotiationServiceInterface) *NegotiationHandler {
	return &NegotiationHandler{service: service}
}

// OpenThreadHandler handles POST /threads. Opening a thread that already
// exists for the (item, buyer) pair appends to it instead.
func (h *NegotiationHandler) OpenThreadHandler(c *gin.Context) {
	var req helpers.OpenThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenThreadHandler", err)
		return
	}

	thread, err := h.service.OpenOrAppend(req.ItemID, req.BuyerID, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("OpenThreadHandler: failed to open thread", map[string]any{
			"item_id":  req.ItemID,
			"buyer_id": req.BuyerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, thread, "thread opened successfully")
	helpers.LogSuccess("OpenThreadHandler", "thread opened successfully", map[string]any{
		"thread_id": thread.ThreadID,
		"item_id":   thread.ItemID,
		"buyer_id":  thread.BuyerID,
		"messages":  len(thread.Messages),
	})
}

// PostMessageHandler handles POST /threads/:thread_id/messages
func (h *NegotiationHandler) PostMessageHandler(c *gin.Context) {
	threadID := c.Param("thread_id")

	var req helpers.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostMessageHandler", err)
		return
	}

	thread, err := h.service.PostMessage(threadID, req.SenderID, req.Body)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PostMessageHandler: failed to post message", map[string]any{
			"thread_id": threadID,
			"sender_id": req.SenderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, thread, "message posted successfully")
	helpers.LogSuccess("PostMessageHandler", "message posted successfully", map[string]any{
		"thread_id": thread.ThreadID,
		"sender_id": req.SenderID,
		"messages":  len(thread.Messages),
	})
}

// MarkReadHandler handles POST /threads/:thread_id/read
func (h *NegotiationHandler) MarkReadHandler(c *gin.Context) {
	threadID := c.Param("thread_id")

	var req helpers.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MarkReadHandler", err)
		return
	}

	if err := h.service.MarkRead(threadID, req.ReaderID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MarkReadHandler: failed to mark read", map[string]any{
			"thread_id": threadID,
			"reader_id": req.ReaderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "messages marked read")
}

// CloseThreadHandler handles POST /threads/:thread_id/close
func (h *NegotiationHandler) CloseThreadHandler(c *gin.Context) {
	threadID := c.Param("thread_id")

	var req helpers.CloseThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CloseThreadHandler", err)
		return
	}

	if err := h.service.Close(threadID, req.RequesterID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseThreadHandler: failed to close thread", map[string]any{
			"thread_id":    threadID,
			"requester_id": req.RequesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "thread closed")
	helpers.LogSuccess("CloseThreadHandler", "thread closed", map[string]any{
		"thread_id":    threadID,
		"requester_id": req.RequesterID,
	})
}

// GetThreadHandler handles GET /threads/:thread_id?user_id=
func (h *NegotiationHandler) GetThreadHandler(c *gin.Context) {
	threadID := c.Param("thread_id")
	userID := c.Query("user_id")

	thread, err := h.service.GetThreadForUser(threadID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetThreadHandler: error retrieving thread", map[string]any{
			"thread_id": threadID,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, thread, "thread retrieved successfully")
}

// GetThreadsByUserHandler handles GET /users/:user_id/threads
func (h *NegotiationHandler) GetThreadsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	threads, err := h.service.GetThreadsForUser(userID)
	if err != nil && !errors.Is(err, negotiationerrors.ErrNoThreads) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetThreadsByUserHandler: error retrieving threads", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if threads == nil {
		threads = []model.Thread{}
	}

	utils.JSONResponse(c, http.StatusOK, threads, "threads retrieved successfully")
	helpers.LogSuccess("GetThreadsByUserHandler", "threads retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(threads),
	})
}
