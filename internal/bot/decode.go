package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivkram/neuroguide-bot/internal/dispatch"
	"github.com/ivkram/neuroguide-bot/internal/models"
)

// decodeMessage turns an inbound message into an event. The second return
// is false for messages with nothing to act on (stickers, photos and the
// like with no text).
func decodeMessage(msg *tgbotapi.Message) (models.Event, bool) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			return models.Event{Kind: models.EventStart}, true
		case "help":
			return models.Event{Kind: models.EventHelp}, true
		case "history":
			return models.Event{Kind: models.EventHistoryCommand}, true
		default:
			return models.Event{Kind: models.EventUnknown}, true
		}
	}

	if msg.Text == "" {
		return models.Event{}, false
	}

	return models.Event{Kind: models.EventFreeText, Text: msg.Text}, true
}

// decodeCallback turns callback data back into an event. Data that
// matches no known token decodes to EventUnknown; the state machine
// answers those with a guidance message instead of faulting.
func decodeCallback(data string) models.Event {
	switch data {
	case dispatch.CallbackMenuNeural:
		return models.Event{Kind: models.EventMenuNeural}
	case dispatch.CallbackMenuAsk:
		return models.Event{Kind: models.EventMenuAsk}
	case dispatch.CallbackMenuImage:
		return models.Event{Kind: models.EventMenuImage}
	case dispatch.CallbackMenuHistory:
		return models.Event{Kind: models.EventMenuHistory}
	case dispatch.CallbackBack:
		return models.Event{Kind: models.EventBack}
	case dispatch.CallbackBackToMain:
		return models.Event{Kind: models.EventBackToMain}
	}

	if category, ok := strings.CutPrefix(data, dispatch.CategoryPrefix); ok && category != "" {
		return models.Event{Kind: models.EventPickCategory, Category: category}
	}

	if idStr, ok := strings.CutPrefix(data, dispatch.ToolPrefix); ok {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err == nil {
			return models.Event{Kind: models.EventPickTool, ToolID: id}
		}
	}

	return models.Event{Kind: models.EventUnknown}
}
