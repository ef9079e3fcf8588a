package dispatch

// Fixed user-visible texts. Provider and store failures always surface as
// one of these, never as raw error text.
const (
	msgGreeting = "Привет! Я бот, который поможет вам узнать о различных нейросетях и получить инструкции для их использования.\n\n" +
		"Пожалуйста, выберите опцию:"

	msgHelp = "/start - Запустить бота и показать главное меню.\n" +
		"/help - Показать эту справку.\n" +
		"/history - Показать вашу историю запросов.\n" +
		"\n" +
		"Опции меню:\n" +
		"- Нейросети: Получить информацию и ссылку на различные нейросети.\n" +
		"- Задать вопрос: Задать вопрос по теме нейросетей и получить ответ от ChatGPT.\n" +
		"- Генерация картинки: Сгенерировать изображение на основе вашего текста.\n" +
		"- Моя история: Просмотреть вашу историю запросов и ответов."

	msgBackToMain    = "Возвращение в главное меню. Пожалуйста, выберите опцию:"
	msgPickCategory  = "Выберите категорию нейросетей:"
	msgAskPrompt     = "Введите ваш вопрос, и я передам его модели ChatGPT для ответа."
	msgImagePrompt   = "Введите описание изображения, которое вы хотите сгенерировать."
	msgImageWait     = "Генерирую изображение, пожалуйста, подождите..."
	msgImageDone     = "Изображение успешно сгенерировано."
	msgAnswerPrefix  = "Ответ на ваш вопрос:\n"
	msgNoHistory     = "У вас пока нет сохраненной истории запросов."
	msgInvalidChoice = "Неверный выбор."
	msgListLoadLost  = "Не удалось загрузить список нейросетей."
	msgUseButtons    = "Пожалуйста, выберите опцию из меню."
	msgStoreDown     = "Сервис временно недоступен. Пожалуйста, попробуйте позже."

	msgAnswerFailed = "Произошла ошибка при обработке запроса к ChatGPT."
	msgImageFailed  = "К сожалению, не удалось сгенерировать изображение. Пожалуйста, попробуйте снова позже."

	msgEmptyCategoryFmt = "В категории '%s' пока нет нейросетей."
	msgToolListFmt      = "Доступные нейросети в категории '%s':"
	msgToolInfoFmt      = "Название: %s\nОписание: %s\nИнструкции: %s\nСсылка: %s"
	msgHistoryEntryFmt  = "%d. [%s]\nТип запроса: %s\nВаш запрос: %s\nОтвет: %s"
)
