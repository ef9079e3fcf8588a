// Package dispatch executes the action resolved for an inbound event:
// it calls the providers and stores, sends replies through the transport,
// writes the audit log, and commits the state transition.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivkram/neuroguide-bot/internal/conversation"
	"github.com/ivkram/neuroguide-bot/internal/models"
	"github.com/ivkram/neuroguide-bot/internal/provider"
	"github.com/ivkram/neuroguide-bot/internal/storage"
)

const defaultWriteRetries = 3

type Dispatcher struct {
	catalog      storage.CatalogStorage
	history      storage.HistoryStorage
	answers      provider.AnswerProvider
	images       provider.ImageProvider
	sender       Sender
	sessions     *conversation.Manager
	writeRetries int
	logger       *zap.Logger
}

func New(
	catalog storage.CatalogStorage,
	history storage.HistoryStorage,
	answers provider.AnswerProvider,
	images provider.ImageProvider,
	sender Sender,
	sessions *conversation.Manager,
	writeRetries int,
	logger *zap.Logger,
) *Dispatcher {
	if writeRetries <= 0 {
		writeRetries = defaultWriteRetries
	}
	return &Dispatcher{
		catalog:      catalog,
		history:      history,
		answers:      answers,
		images:       images,
		sender:       sender,
		sessions:     sessions,
		writeRetries: writeRetries,
		logger:       logger,
	}
}

// HandleEvent applies one inbound event for a user: resolve against the
// current state, run the bound action, send replies, write history, commit
// the transition. The user's session lock is held throughout, so a user's
// events apply strictly in arrival order.
func (d *Dispatcher) HandleEvent(ctx context.Context, userID int64, ev models.Event) {
	d.sessions.Do(userID, func(state models.State, conv conversation.Context) (models.State, conversation.Context) {
		res := conversation.Resolve(state, conv, ev)
		return d.execute(ctx, userID, state, conv, res)
	})
}

func (d *Dispatcher) execute(
	ctx context.Context,
	userID int64,
	state models.State,
	conv conversation.Context,
	res conversation.Resolution,
) (models.State, conversation.Context) {
	switch res.Action {
	case conversation.ActionNone:
		return state, conv

	case conversation.ActionShowGreeting:
		d.send(ctx, userID, menuReply(msgGreeting, mainMenuKeyboard()))

	case conversation.ActionShowHelp:
		d.send(ctx, userID, textReply(msgHelp))

	case conversation.ActionShowMainMenu:
		d.send(ctx, userID, menuReply(msgBackToMain, mainMenuKeyboard()))

	case conversation.ActionShowCategories:
		d.send(ctx, userID, menuReply(msgPickCategory, categoriesKeyboard()))

	case conversation.ActionShowToolList:
		return d.showToolList(ctx, userID, state, conv, res)

	case conversation.ActionShowToolInfo:
		return d.showToolInfo(ctx, userID, state, conv, res)

	case conversation.ActionPromptQuestion:
		d.send(ctx, userID, textReply(msgAskPrompt))

	case conversation.ActionPromptImage:
		d.send(ctx, userID, textReply(msgImagePrompt))

	case conversation.ActionShowHistory:
		d.showHistory(ctx, userID)

	case conversation.ActionAskQuestion:
		d.askQuestion(ctx, userID, res.Text)

	case conversation.ActionGenerateImage:
		d.generateImage(ctx, userID, res.Text)

	case conversation.ActionInvalidChoice:
		d.send(ctx, userID, textReply(msgUseButtons))
	}

	return res.Next, conv
}

func (d *Dispatcher) showToolList(
	ctx context.Context,
	userID int64,
	state models.State,
	conv conversation.Context,
	res conversation.Resolution,
) (models.State, conversation.Context) {
	// A Back from the detail screen with no remembered category has no
	// list to re-derive.
	if res.Category == "" {
		d.send(ctx, userID, textReply(msgListLoadLost))
		return state, conv
	}

	tools, err := d.catalog.ListByCategory(ctx, res.Category)
	if err != nil {
		d.logger.Error("Failed to list tools by category",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", res.Category))
		d.send(ctx, userID, textReply(msgStoreDown))
		return state, conv
	}

	// An empty category never transitions to the list screen.
	if len(tools) == 0 {
		d.send(ctx, userID, textReply(fmt.Sprintf(msgEmptyCategoryFmt, res.Category)))
		return state, conv
	}

	d.send(ctx, userID, menuReply(
		fmt.Sprintf(msgToolListFmt, res.Category),
		toolListKeyboard(tools),
	))

	conv.SelectedCategory = res.Category
	return res.Next, conv
}

func (d *Dispatcher) showToolInfo(
	ctx context.Context,
	userID int64,
	state models.State,
	conv conversation.Context,
	res conversation.Resolution,
) (models.State, conversation.Context) {
	tool, err := d.catalog.GetByID(ctx, res.ToolID)
	if errors.Is(err, storage.ErrNotFound) {
		d.send(ctx, userID, textReply(msgInvalidChoice))
		return state, conv
	}
	if err != nil {
		d.logger.Error("Failed to get tool",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("tool_id", res.ToolID))
		d.send(ctx, userID, textReply(msgStoreDown))
		return state, conv
	}

	d.send(ctx, userID, menuReply(
		fmt.Sprintf(msgToolInfoFmt, tool.Name, tool.Description, tool.Instructions, tool.Link),
		toolInfoKeyboard(),
	))
	return res.Next, conv
}

func (d *Dispatcher) showHistory(ctx context.Context, userID int64) {
	entries, err := d.history.ListByUser(ctx, userID)
	if err != nil {
		d.logger.Error("Failed to list history",
			zap.Error(err),
			zap.Int64("user_id", userID))
		d.send(ctx, userID, textReply(msgStoreDown))
		return
	}

	if len(entries) == 0 {
		d.send(ctx, userID, textReply(msgNoHistory))
		return
	}

	for i, e := range entries {
		d.send(ctx, userID, textReply(fmt.Sprintf(
			msgHistoryEntryFmt,
			i+1,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.RequestType,
			e.RequestContent,
			e.ResponseContent,
		)))

		// Failed generations have no image ref and render as text only.
		if e.ImageRef != "" {
			d.send(ctx, userID, photoReply(e.ImageRef))
		}
	}
}

func (d *Dispatcher) askQuestion(ctx context.Context, userID int64, question string) {
	interactionID := uuid.New().String()

	answer, err := d.answers.Answer(ctx, question)
	if err != nil {
		d.logger.Warn("Answer provider failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("interaction_id", interactionID))
		d.send(ctx, userID, textReply(msgAnswerFailed))
		d.writeHistory(ctx, &models.HistoryEntry{
			UserID:          userID,
			RequestType:     models.RequestQuestion,
			RequestContent:  question,
			ResponseContent: msgAnswerFailed,
		}, interactionID)
		return
	}

	d.send(ctx, userID, textReply(msgAnswerPrefix+answer))
	d.writeHistory(ctx, &models.HistoryEntry{
		UserID:          userID,
		RequestType:     models.RequestQuestion,
		RequestContent:  question,
		ResponseContent: answer,
	}, interactionID)
}

func (d *Dispatcher) generateImage(ctx context.Context, userID int64, prompt string) {
	interactionID := uuid.New().String()

	d.send(ctx, userID, textReply(msgImageWait))

	imageRef, err := d.images.GenerateImage(ctx, prompt)
	if err != nil {
		d.logger.Warn("Image provider failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("interaction_id", interactionID))
		d.send(ctx, userID, textReply(msgImageFailed))
		d.writeHistory(ctx, &models.HistoryEntry{
			UserID:          userID,
			RequestType:     models.RequestImageGeneration,
			RequestContent:  prompt,
			ResponseContent: msgImageFailed,
		}, interactionID)
		return
	}

	d.send(ctx, userID, photoReply(imageRef))
	d.writeHistory(ctx, &models.HistoryEntry{
		UserID:          userID,
		RequestType:     models.RequestImageGeneration,
		RequestContent:  prompt,
		ResponseContent: msgImageDone,
		ImageRef:        imageRef,
	}, interactionID)
}

// writeHistory appends the audit entry, retrying a bounded number of
// times. On exhaustion the entry is dropped: an audit gap is preferable to
// blocking a reply that already went out.
func (d *Dispatcher) writeHistory(ctx context.Context, entry *models.HistoryEntry, interactionID string) {
	var err error
	for attempt := 1; attempt <= d.writeRetries; attempt++ {
		if err = d.history.Append(ctx, entry); err == nil {
			return
		}
		d.logger.Warn("Failed to append history entry",
			zap.Error(err),
			zap.Int64("user_id", entry.UserID),
			zap.String("interaction_id", interactionID),
			zap.Int("attempt", attempt))
	}

	d.logger.Error("Dropping history entry after retries",
		zap.Error(err),
		zap.Int64("user_id", entry.UserID),
		zap.String("interaction_id", interactionID))
}

func (d *Dispatcher) send(ctx context.Context, userID int64, reply Reply) {
	if err := d.sender.Send(ctx, userID, reply); err != nil {
		d.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("user_id", userID))
	}
}
