package i18n

// Export column headers in the supported languages. Unknown languages and
// unknown keys fall back to English / the key itself.

const DefaultLang = "en"

var translations = map[string]map[string]string{
	"en": {
		"client_name":    "Client Name",
		"email":          "Email",
		"contact":        "Contact",
		"status":         "Status",
		"last_contact":   "Last Contact",
		"notes":          "Notes",
		"project_name":   "Project Name",
		"client":         "Client",
		"budget":         "Budget",
		"deadline":       "Deadline",
		"description":    "Description",
		"project":        "Project",
		"amount":         "Amount",
		"payment_status": "Payment Status",
		"due_date":       "Due Date",
		"comment":        "Comment",
	},
	"ru": {
		"client_name":    "Имя клиента",
		"email":          "Email",
		"contact":        "Контакт",
		"status":         "Статус",
		"last_contact":   "Последний контакт",
		"notes":          "Заметки",
		"project_name":   "Название проекта",
		"client":         "Клиент",
		"budget":         "Бюджет",
		"deadline":       "Дедлайн",
		"description":    "Описание",
		"project":        "Проект",
		"amount":         "Сумма",
		"payment_status": "Статус оплаты",
		"due_date":       "Срок оплаты",
		"comment":        "Комментарий",
	},
}

func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLang]
	}

	if text, ok := table[key]; ok {
		return text
	}

	if text, ok := translations[DefaultLang][key]; ok {
		return text
	}

	return key
}

func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}
