package constants

// Категории клиентов
// Client categories
const (
	CATEGORY_INDIVIDUAL = "Физическое лицо"
	CATEGORY_COMPANY    = "Юридическое лицо"
)

// Регионы клиентов
// Client regions
const (
	REGION_MOSCOW  = "Москва"
	REGION_REGIONS = "Регионы"
)

// NOT_SPECIFIED - значение по умолчанию для источника привлечения и рекламного канала.
const NOT_SPECIFIED = "не указано"

// Источники привлечения клиентов
// Client acquisition sources
const (
	SOURCE_NONE           = NOT_SPECIFIED
	SOURCE_ADVERTISING    = "Реклама"
	SOURCE_SOCIAL         = "Соцсети"
	SOURCE_WEBSITE        = "Сайт"
	SOURCE_RECOMMENDATION = "Рекомендация"
)

// Скидка для повторных клиентов, в процентах.
const REPEAT_CLIENT_DISCOUNT = 10.0

// Тексты рекомендаций
// Recommendation texts
const (
	RECOMMEND_WRITTEN_CONSULTATION = "Индивидуальная консультация (письменно)"
	RECOMMEND_CUSTOMER_MATERIALS   = "Обработка материалов заказчика"
	RECOMMEND_SUPPORT_DISCOUNT     = "Скидка 10% на услуги сопровождения"
	RECOMMEND_CONTENT_FROM_SCRATCH = "Создание контента с нуля"
)

// DateLayout - формат хранения календарных дат (заявки, кампании).
const DateLayout = "2006-01-02"

// Таблицы, из которых разрешено удаление записей.
const (
	TABLE_CLIENTS  = "clients"
	TABLE_SERVICES = "services"
	TABLE_ORDERS   = "orders"
	TABLE_AD_STATS = "ad_stats"
)

// AllowedTables - белый список таблиц для универсального удаления.
var AllowedTables = map[string]bool{
	TABLE_CLIENTS:  true,
	TABLE_SERVICES: true,
	TABLE_ORDERS:   true,
	TABLE_AD_STATS: true,
}

// Categories, Regions и Sources - допустимые значения для форм выбора.
var (
	Categories = []string{CATEGORY_INDIVIDUAL, CATEGORY_COMPANY}
	Regions    = []string{REGION_MOSCOW, REGION_REGIONS}
	Sources    = []string{SOURCE_NONE, SOURCE_ADVERTISING, SOURCE_SOCIAL, SOURCE_WEBSITE, SOURCE_RECOMMENDATION}
)

// DefaultService - пара (название, стоимость) стандартного каталога.
type DefaultService struct {
	Title string
	Price string
}

// DefaultServices - каталог, который загружается при первом запуске в пустую таблицу услуг.
var DefaultServices = []DefaultService{
	{"Создание контента с нуля", "300"},
	{"Обработка материала заказчика", "200"},
	{"Актуализация и сопровождение", "800"},
	{"Индивидуальная консультация (устно)", "4000"},
	{"Индивидуальная консультация (письменно)", "3000"},
	{"Создание лонгрида", "200"},
	{"Практико-ориентированное задание", "500"},
	{"Вставка видео + вопросы", "300"},
	{"Вопросы для размышления", "75"},
	{"Материалы для самостоятельного изучения + вопросы", "300"},
	{"PowerPoint (без эффектов)", "500"},
	{"PowerPoint (с эффектами)", "800"},
	{"Дизайн курса в iSpring Suite (.SCORM)", "3500"},
}

// Заголовки столбцов для выгрузки в Excel
// Column headers for Excel export
var (
	ClientHeaders   = []string{"ID", "ФИО/Название", "Email", "Категория", "Регион", "Повторный клиент", "Источник привлечения", "По рекомендации", "Канал рекламы"}
	ServiceHeaders  = []string{"ID", "Название услуги", "Стоимость"}
	OrderHeaders    = []string{"ID", "Клиент", "Услуга", "Дата заявки", "Скидка (%)", "Итоговая сумма (₽)", "Выполнено"}
	CampaignHeaders = []string{"Канал", "Затраты (₽)", "Доход (₽)", "Дата", "Эффективность (ЗР/ДП)"}
)
