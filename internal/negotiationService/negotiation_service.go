package negotiation

import (
	"fmt"
	"strings"
	"time"

	"resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/internal/repository"
	"resale-negotiation/utils"
)

// NegotiationService defines the business logic for buyer-seller
// negotiation threads
type NegotiationService struct {
	repo repository.ThreadDB
	now  func() time.Time
}

// NewNegotiationService creates a new NegotiationService instance
func NewNegotiationService(repo repository.ThreadDB) *NegotiationService {
	return &NegotiationService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// OpenOrAppend starts the buyer's thread on an item, or appends to it when
// it already exists. The lookup-or-create is atomic per (item, buyer) at
// the repository, so concurrent first contacts never produce duplicates.
func (s *NegotiationService) OpenOrAppend(itemID, buyerID, message string) (models.Thread, error) {
	if itemID == "" || buyerID == "" {
		return models.Thread{}, fmt.Errorf("service: %w - missing itemID or buyerID", negotiationerrors.ErrInvalidInput)
	}
	body := strings.TrimSpace(message)
	if body == "" {
		return models.Thread{}, fmt.Errorf("service: %w", negotiationerrors.ErrEmptyMessage)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Thread{}, fmt.Errorf("service: failed to open thread on item %s: %w", itemID, err)
	}
	if buyerID == item.SellerID {
		return models.Thread{}, fmt.Errorf("service: %w - item %s", negotiationerrors.ErrOwnListing, itemID)
	}

	msg := models.Message{
		MessageID: utils.GenerateSortableID(),
		SenderID:  buyerID,
		Body:      body,
		CreatedAt: s.now(),
	}

	thread, err := s.repo.UpsertThread(itemID, buyerID, item.SellerID, msg)
	if err != nil {
		return models.Thread{}, fmt.Errorf("service: failed to open thread on item %s: %w", itemID, err)
	}
	return thread, nil
}

// PostMessage appends a message from a participant to an active thread
func (s *NegotiationService) PostMessage(threadID, senderID, body string) (models.Thread, error) {
	if threadID == "" || senderID == "" {
		return models.Thread{}, fmt.Errorf("service: %w - missing threadID or senderID", negotiationerrors.ErrInvalidInput)
	}
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return models.Thread{}, fmt.Errorf("service: %w", negotiationerrors.ErrEmptyMessage)
	}

	thread, err := s.repo.GetThread(threadID)
	if err != nil {
		return models.Thread{}, fmt.Errorf("service: failed to post message: %w", err)
	}
	if !thread.IsParticipant(senderID) {
		return models.Thread{}, fmt.Errorf("service: %w - thread %s", negotiationerrors.ErrNotAParticipant, threadID)
	}
	if thread.Status == models.ThreadClosed {
		return models.Thread{}, fmt.Errorf("service: %w - thread %s", negotiationerrors.ErrThreadClosed, threadID)
	}

	msg := models.Message{
		MessageID: utils.GenerateSortableID(),
		SenderID:  senderID,
		Body:      trimmed,
		CreatedAt: s.now(),
	}

	// The repository re-checks the closed state under its own lock, so a
	// close racing this append cannot let the message slip in.
	updated, err := s.repo.AppendMessage(threadID, msg)
	if err != nil {
		return models.Thread{}, fmt.Errorf("service: failed to post message to thread %s: %w", threadID, err)
	}
	return updated, nil
}

// MarkRead marks every message authored by the other participant as read.
// Idempotent: a second call changes nothing.
func (s *NegotiationService) MarkRead(threadID, readerID string) error {
	if threadID == "" || readerID == "" {
		return fmt.Errorf("service: %w - missing threadID or readerID", negotiationerrors.ErrInvalidInput)
	}

	thread, err := s.repo.GetThread(threadID)
	if err != nil {
		return fmt.Errorf("service: failed to mark read: %w", err)
	}
	if !thread.IsParticipant(readerID) {
		return fmt.Errorf("service: %w - thread %s", negotiationerrors.ErrNotAParticipant, threadID)
	}

	if err := s.repo.MarkMessagesRead(threadID, readerID); err != nil {
		return fmt.Errorf("service: failed to mark read on thread %s: %w", threadID, err)
	}
	return nil
}

// Close transitions a thread to closed. Any participant may close; closing
// an already-closed thread is a no-op. There is no reopen.
func (s *NegotiationService) Close(threadID, requesterID string) error {
	if threadID == "" || requesterID == "" {
		return fmt.Errorf("service: %w - missing threadID or requesterID", negotiationerrors.ErrInvalidInput)
	}

	thread, err := s.repo.GetThread(threadID)
	if err != nil {
		return fmt.Errorf("service: failed to close thread: %w", err)
	}
	if !thread.IsParticipant(requesterID) {
		return fmt.Errorf("service: %w - thread %s", negotiationerrors.ErrNotAParticipant, threadID)
	}
	if thread.Status == models.ThreadClosed {
		return nil
	}

	if err := s.repo.CloseThread(threadID); err != nil {
		return fmt.Errorf("service: failed to close thread %s: %w", threadID, err)
	}
	return nil
}

// GetThreadForUser returns a thread to one of its participants
func (s *NegotiationService) GetThreadForUser(threadID, userID string) (models.Thread, error) {
	if threadID == "" || userID == "" {
		return models.Thread{}, fmt.Errorf("service: %w - missing threadID or userID", negotiationerrors.ErrInvalidInput)
	}

	thread, err := s.repo.GetThread(threadID)
	if err != nil {
		return models.Thread{}, fmt.Errorf("service: failed to get thread %s: %w", threadID, err)
	}
	if !thread.IsParticipant(userID) {
		return models.Thread{}, fmt.Errorf("service: %w - thread %s", negotiationerrors.ErrNotAParticipant, threadID)
	}
	return thread, nil
}

// GetThreadsForUser returns the user's inbox: every thread where they are
// buyer or seller, most recently active first
func (s *NegotiationService) GetThreadsForUser(userID string) ([]models.Thread, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", negotiationerrors.ErrInvalidInput)
	}

	threads, err := s.repo.GetThreadsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get threads for user %s: %w", userID, err)
	}
	return threads, nil
}
