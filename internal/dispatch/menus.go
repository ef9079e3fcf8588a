package dispatch

import (
	"fmt"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

// Callback data tokens. The keyboard builders below emit them and the
// transport adapter decodes them back into events.
const (
	CallbackMenuNeural  = "menu_neural"
	CallbackMenuAsk     = "menu_ask"
	CallbackMenuImage   = "menu_image"
	CallbackMenuHistory = "menu_history"
	CallbackBackToMain  = "back_to_main_menu"
	CallbackBack        = "back"

	CategoryPrefix = "neural_category_"
	ToolPrefix     = "neural_network_"
)

// Categories offered on the category screen. The catalog may hold tools
// outside this set; they are reachable through search only.
var Categories = []string{"Фото", "Видео", "Текст", "Аудио"}

func mainMenuKeyboard() Keyboard {
	return Keyboard{
		{{Label: "Нейросети", Data: CallbackMenuNeural}},
		{{Label: "Задать вопрос", Data: CallbackMenuAsk}},
		{{Label: "Генерация картинки", Data: CallbackMenuImage}},
		{{Label: "Моя история", Data: CallbackMenuHistory}},
	}
}

func categoriesKeyboard() Keyboard {
	kb := make(Keyboard, 0, len(Categories)+1)
	for _, category := range Categories {
		kb = append(kb, []Button{{Label: category, Data: CategoryPrefix + category}})
	}
	kb = append(kb, []Button{{Label: "Назад", Data: CallbackBackToMain}})
	return kb
}

func toolListKeyboard(tools []models.ToolSummary) Keyboard {
	kb := make(Keyboard, 0, len(tools)+1)
	for _, tool := range tools {
		kb = append(kb, []Button{{Label: tool.Name, Data: fmt.Sprintf("%s%d", ToolPrefix, tool.ID)}})
	}
	kb = append(kb, []Button{{Label: "Назад", Data: CallbackBack}})
	return kb
}

func toolInfoKeyboard() Keyboard {
	return Keyboard{
		{{Label: "Назад", Data: CallbackBack}},
		{{Label: "В главное меню", Data: CallbackBackToMain}},
	}
}
