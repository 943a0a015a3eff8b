package helpers

// Request DTOs. User identity arrives from the upstream gateway that
// performed authentication; this core only checks participation.
type OpenThreadRequest struct {
	ItemID  string `json:"item_id" binding:"required"`
	BuyerID string `json:"buyer_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type PostMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

type MarkReadRequest struct {
	ReaderID string `json:"reader_id" binding:"required"`
}

type CloseThreadRequest struct {
	RequesterID string `json:"requester_id" binding:"required"`
}
