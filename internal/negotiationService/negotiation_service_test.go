package negotiation

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/internal/repository"
)

func listedItem(itemID, sellerID string) models.Item {
	return models.Item{
		ItemID:         itemID,
		SellerID:       sellerID,
		Title:          "listing",
		ListPrice:      100,
		BiddingEnabled: true,
	}
}

func activeThread(threadID, itemID, buyerID, sellerID string) models.Thread {
	return models.Thread{
		ThreadID: threadID,
		ItemID:   itemID,
		BuyerID:  buyerID,
		SellerID: sellerID,
		Status:   models.ThreadActive,
	}
}

// Test OpenOrAppend
func TestOpenOrAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		itemID   string
		buyerID  string
		message  string
		item     models.Item
		itemErr  error
		wantErr  error
		skipRepo bool
	}{
		{
			name:    "valid_first_contact",
			itemID:  "item1",
			buyerID: "buyer1",
			message: "is this still available?",
			item:    listedItem("item1", "seller1"),
		},
		{
			name:     "empty_itemID",
			itemID:   "",
			buyerID:  "buyer1",
			message:  "hello",
			wantErr:  negotiationerrors.ErrInvalidInput,
			skipRepo: true,
		},
		{
			name:     "empty_buyerID",
			itemID:   "item1",
			buyerID:  "",
			message:  "hello",
			wantErr:  negotiationerrors.ErrInvalidInput,
			skipRepo: true,
		},
		{
			name:     "empty_message",
			itemID:   "item1",
			buyerID:  "buyer1",
			message:  "",
			wantErr:  negotiationerrors.ErrEmptyMessage,
			skipRepo: true,
		},
		{
			name:     "whitespace_only_message",
			itemID:   "item1",
			buyerID:  "buyer1",
			message:  "   \t\n",
			wantErr:  negotiationerrors.ErrEmptyMessage,
			skipRepo: true,
		},
		{
			name:    "item_not_found",
			itemID:  "itemX",
			buyerID: "buyer1",
			message: "hello",
			itemErr: negotiationerrors.ErrItemNotFound,
			wantErr: negotiationerrors.ErrItemNotFound,
		},
		{
			name:    "seller_cannot_open_thread_on_own_listing",
			itemID:  "item1",
			buyerID: "seller1",
			message: "hello",
			item:    listedItem("item1", "seller1"),
			wantErr: negotiationerrors.ErrOwnListing,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockThreadDB(ctrl)
			if !tc.skipRepo {
				mockRepo.EXPECT().GetItem(tc.itemID).Return(tc.item, tc.itemErr)
			}
			if !tc.skipRepo && tc.wantErr == nil {
				mockRepo.EXPECT().
					UpsertThread(tc.itemID, tc.buyerID, tc.item.SellerID, gomock.Any()).
					DoAndReturn(func(itemID, buyerID, sellerID string, first models.Message) (models.Thread, error) {
						require.NotEmpty(t, first.MessageID)
						require.Equal(t, tc.buyerID, first.SenderID)
						require.Equal(t, tc.message, first.Body)
						thread := activeThread("thread1", itemID, buyerID, sellerID)
						thread.Messages = []models.Message{first}
						thread.LastMessageAt = first.CreatedAt
						return thread, nil
					})
			}

			service := NewNegotiationService(mockRepo)

			thread, err := service.OpenOrAppend(tc.itemID, tc.buyerID, tc.message)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.buyerID, thread.BuyerID)
			require.Equal(t, tc.item.SellerID, thread.SellerID)
			require.Len(t, thread.Messages, 1)
		})
	}

	t.Run("message_body_is_trimmed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockThreadDB(ctrl)
		mockRepo.EXPECT().GetItem("item1").Return(listedItem("item1", "seller1"), nil)
		mockRepo.EXPECT().
			UpsertThread("item1", "buyer1", "seller1", gomock.Any()).
			DoAndReturn(func(itemID, buyerID, sellerID string, first models.Message) (models.Thread, error) {
				require.Equal(t, "hello there", first.Body)
				return activeThread("thread1", itemID, buyerID, sellerID), nil
			})

		service := NewNegotiationService(mockRepo)

		_, err := service.OpenOrAppend("item1", "buyer1", "  hello there  ")
		require.NoError(t, err)
	})
}

// Test PostMessage
func TestPostMessage(t *testing.T) {
	t.Parallel()

	thread := activeThread("thread1", "item1", "buyer1", "seller1")
	closed := activeThread("thread1", "item1", "buyer1", "seller1")
	closed.Status = models.ThreadClosed

	tests := []struct {
		name       string
		threadID   string
		senderID   string
		body       string
		thread     models.Thread
		threadErr  error
		wantErr    error
		skipRepo   bool
		wantAppend bool
	}{
		{name: "buyer_posts", threadID: "thread1", senderID: "buyer1", body: "would you take 80?", thread: thread, wantAppend: true},
		{name: "seller_posts", threadID: "thread1", senderID: "seller1", body: "how about 90", thread: thread, wantAppend: true},
		{name: "empty_threadID", threadID: "", senderID: "buyer1", body: "hi", wantErr: negotiationerrors.ErrInvalidInput, skipRepo: true},
		{name: "empty_body", threadID: "thread1", senderID: "buyer1", body: "  ", wantErr: negotiationerrors.ErrEmptyMessage, skipRepo: true},
		{name: "thread_not_found", threadID: "threadX", senderID: "buyer1", body: "hi", threadErr: negotiationerrors.ErrThreadNotFound, wantErr: negotiationerrors.ErrThreadNotFound},
		{name: "outsider_cannot_post", threadID: "thread1", senderID: "lurker", body: "hi", thread: thread, wantErr: negotiationerrors.ErrNotAParticipant},
		{name: "closed_thread", threadID: "thread1", senderID: "buyer1", body: "hi", thread: closed, wantErr: negotiationerrors.ErrThreadClosed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockThreadDB(ctrl)
			if !tc.skipRepo {
				mockRepo.EXPECT().GetThread(tc.threadID).Return(tc.thread, tc.threadErr)
			}
			if tc.wantAppend {
				mockRepo.EXPECT().
					AppendMessage(tc.threadID, gomock.Any()).
					DoAndReturn(func(threadID string, msg models.Message) (models.Thread, error) {
						require.NotEmpty(t, msg.MessageID)
						require.Equal(t, tc.senderID, msg.SenderID)
						require.Equal(t, tc.body, msg.Body)
						updated := tc.thread
						updated.Messages = append(updated.Messages, msg)
						updated.LastMessageAt = msg.CreatedAt
						return updated, nil
					})
			}

			service := NewNegotiationService(mockRepo)

			updated, err := service.PostMessage(tc.threadID, tc.senderID, tc.body)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, updated.Messages, 1)
		})
	}
}

// Test MarkRead
func TestMarkRead(t *testing.T) {
	t.Parallel()

	thread := activeThread("thread1", "item1", "buyer1", "seller1")

	tests := []struct {
		name      string
		threadID  string
		readerID  string
		thread    models.Thread
		threadErr error
		wantErr   error
		skipRepo  bool
		wantMark  bool
	}{
		{name: "buyer_marks_read", threadID: "thread1", readerID: "buyer1", thread: thread, wantMark: true},
		{name: "seller_marks_read", threadID: "thread1", readerID: "seller1", thread: thread, wantMark: true},
		{name: "empty_readerID", threadID: "thread1", readerID: "", wantErr: negotiationerrors.ErrInvalidInput, skipRepo: true},
		{name: "thread_not_found", threadID: "threadX", readerID: "buyer1", threadErr: negotiationerrors.ErrThreadNotFound, wantErr: negotiationerrors.ErrThreadNotFound},
		{name: "outsider_cannot_mark", threadID: "thread1", readerID: "lurker", thread: thread, wantErr: negotiationerrors.ErrNotAParticipant},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockThreadDB(ctrl)
			if !tc.skipRepo {
				mockRepo.EXPECT().GetThread(tc.threadID).Return(tc.thread, tc.threadErr)
			}
			if tc.wantMark {
				mockRepo.EXPECT().MarkMessagesRead(tc.threadID, tc.readerID).Return(nil)
			}

			service := NewNegotiationService(mockRepo)

			err := service.MarkRead(tc.threadID, tc.readerID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Test Close
func TestClose(t *testing.T) {
	t.Parallel()

	thread := activeThread("thread1", "item1", "buyer1", "seller1")
	closed := activeThread("thread1", "item1", "buyer1", "seller1")
	closed.Status = models.ThreadClosed

	tests := []struct {
		name        string
		threadID    string
		requesterID string
		thread      models.Thread
		threadErr   error
		wantErr     error
		skipRepo    bool
		wantClose   bool
	}{
		{name: "buyer_closes", threadID: "thread1", requesterID: "buyer1", thread: thread, wantClose: true},
		{name: "seller_closes", threadID: "thread1", requesterID: "seller1", thread: thread, wantClose: true},
		{name: "already_closed_is_noop", threadID: "thread1", requesterID: "buyer1", thread: closed},
		{name: "empty_requesterID", threadID: "thread1", requesterID: "", wantErr: negotiationerrors.ErrInvalidInput, skipRepo: true},
		{name: "thread_not_found", threadID: "threadX", requesterID: "buyer1", threadErr: negotiationerrors.ErrThreadNotFound, wantErr: negotiationerrors.ErrThreadNotFound},
		{name: "outsider_cannot_close", threadID: "thread1", requesterID: "lurker", thread: thread, wantErr: negotiationerrors.ErrNotAParticipant},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockThreadDB(ctrl)
			if !tc.skipRepo {
				mockRepo.EXPECT().GetThread(tc.threadID).Return(tc.thread, tc.threadErr)
			}
			if tc.wantClose {
				mockRepo.EXPECT().CloseThread(tc.threadID).Return(nil)
			}

			service := NewNegotiationService(mockRepo)

			err := service.Close(tc.threadID, tc.requesterID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Test GetThreadForUser
func TestGetThreadForUser(t *testing.T) {
	t.Parallel()

	thread := activeThread("thread1", "item1", "buyer1", "seller1")

	tests := []struct {
		name      string
		threadID  string
		userID    string
		thread    models.Thread
		threadErr error
		wantErr   error
		skipRepo  bool
	}{
		{name: "buyer_reads", threadID: "thread1", userID: "buyer1", thread: thread},
		{name: "seller_reads", threadID: "thread1", userID: "seller1", thread: thread},
		{name: "outsider_cannot_read", threadID: "thread1", userID: "lurker", thread: thread, wantErr: negotiationerrors.ErrNotAParticipant},
		{name: "thread_not_found", threadID: "threadX", userID: "buyer1", threadErr: negotiationerrors.ErrThreadNotFound, wantErr: negotiationerrors.ErrThreadNotFound},
		{name: "empty_userID", threadID: "thread1", userID: "", wantErr: negotiationerrors.ErrInvalidInput, skipRepo: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockThreadDB(ctrl)
			if !tc.skipRepo {
				mockRepo.EXPECT().GetThread(tc.threadID).Return(tc.thread, tc.threadErr)
			}

			service := NewNegotiationService(mockRepo)

			got, err := service.GetThreadForUser(tc.threadID, tc.userID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.thread, got)
			}
		})
	}
}

// Test GetThreadsForUser
func TestGetThreadsForUser(t *testing.T) {
	t.Parallel()

	threads := []models.Thread{activeThread("thread1", "item1", "buyer1", "seller1")}

	tests := []struct {
		name        string
		userID      string
		repoThreads []models.Thread
		repoErr     error
		wantErr     error
		skipRepo    bool
	}{
		{name: "user_with_threads", userID: "buyer1", repoThreads: threads},
		{name: "user_without_threads", userID: "userX", repoErr: negotiationerrors.ErrNoThreads, wantErr: negotiationerrors.ErrNoThreads},
		{name: "empty_userID", userID: "", wantErr: negotiationerrors.ErrInvalidInput, skipRepo: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockThreadDB(ctrl)
			if !tc.skipRepo {
				mockRepo.EXPECT().GetThreadsByUser(tc.userID).Return(tc.repoThreads, tc.repoErr)
			}

			service := NewNegotiationService(mockRepo)

			got, err := service.GetThreadsForUser(tc.userID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.repoThreads, got)
			}
		})
	}
}

// Full conversation against the memory store: open, haggle, read, close
func TestNegotiationLifecycle(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	repo.AddItem(listedItem("item1", "seller1"))
	service := NewNegotiationService(repo)

	thread, err := service.OpenOrAppend("item1", "buyer1", "is this still available?")
	require.NoError(t, err)
	require.Equal(t, models.ThreadActive, thread.Status)
	require.Len(t, thread.Messages, 1)

	// Second contact from the same buyer lands in the same thread
	again, err := service.OpenOrAppend("item1", "buyer1", "would you take 80?")
	require.NoError(t, err)
	require.Equal(t, thread.ThreadID, again.ThreadID)
	require.Len(t, again.Messages, 2)

	// A different buyer gets their own thread
	other, err := service.OpenOrAppend("item1", "buyer2", "still for sale?")
	require.NoError(t, err)
	require.NotEqual(t, thread.ThreadID, other.ThreadID)

	updated, err := service.PostMessage(thread.ThreadID, "seller1", "how about 90")
	require.NoError(t, err)
	require.Len(t, updated.Messages, 3)

	// The seller has read the buyer's messages; their own stay untouched
	require.NoError(t, service.MarkRead(thread.ThreadID, "seller1"))
	got, err := service.GetThreadForUser(thread.ThreadID, "seller1")
	require.NoError(t, err)
	for _, m := range got.Messages {
		if m.SenderID == "buyer1" {
			require.True(t, m.Read)
		} else {
			require.False(t, m.Read)
		}
	}

	// The seller's inbox has both conversations, most recent first
	inbox, err := service.GetThreadsForUser("seller1")
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	require.Equal(t, thread.ThreadID, inbox[0].ThreadID)

	require.NoError(t, service.Close(thread.ThreadID, "seller1"))
	require.NoError(t, service.Close(thread.ThreadID, "buyer1"), "closing again is a no-op")

	_, err = service.PostMessage(thread.ThreadID, "buyer1", "wait, 85?")
	require.ErrorIs(t, err, negotiationerrors.ErrThreadClosed)

	// No reopen path: even the first-contact route refuses the closed thread
	_, err = service.OpenOrAppend("item1", "buyer1", "hello again")
	require.ErrorIs(t, err, negotiationerrors.ErrThreadClosed)

	// The other buyer's thread is unaffected
	_, err = service.PostMessage(other.ThreadID, "buyer2", "ping")
	require.NoError(t, err)
}
