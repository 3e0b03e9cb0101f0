package constants

// Chat va Context konstantalari
const (
	// DefaultMaxContextSize chat tarixida saqlanadigan max xabarlar soni
	DefaultMaxContextSize = 60

	// DefaultMaxHistoryMessages AI ga yuboriladigan max xabarlar
	DefaultMaxHistoryMessages = 10
)

// Katalog konstantalari
const (
	// HeaderRowCount jadval boshidagi sarlavha qatorlari (banner, bo'sh qator,
	// ustun nomlari, sub-header) - ular mahsulot emas
	HeaderRowCount = 4

	// DefaultSearchLimit search natijalarining default cheklovi
	DefaultSearchLimit = 20
)

// Render konstantalari
const (
	// DefaultMaxEntries kontekstga kiradigan max mahsulotlar soni
	DefaultMaxEntries = 20

	// DefaultCharacterBudget render qilingan matnning max uzunligi
	DefaultCharacterBudget = 8000

	// DefaultLeaderboardSize top ro'yxatdagi max pozitsiyalar
	DefaultLeaderboardSize = 20
)

// AI Model konstantalari
const (
	// GeminiModelName Gemini AI model nomi
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature AI javob aniqlik darajasi (0.0-1.0)
	AITemperature = 0.3

	// AITopK Top-K sampling parametri
	AITopK = 20

	// AITopP Top-P sampling parametri
	AITopP = 0.9

	// MaxRetries AI ga so'rov yuborish uchun max urinishlar
	MaxRetries = 3

	// RetryDelay har bir urinish o'rtasidagi kutish vaqti (soniya)
	RetryDelay = 10
)

// Quota va broadcast konstantalari
const (
	// DefaultDailyQuota bitta foydalanuvchining kunlik AI so'rovlari limiti
	DefaultDailyQuota = 15

	// BroadcastIntervalHours haftalik broadcast oralig'i (soatlarda)
	BroadcastIntervalHours = 7 * 24
)

// Timeout konstantalari (soniya)
const (
	// FetchTimeout jadvalni yuklab olish uchun umumiy timeout
	FetchTimeout = 60

	// EnrichTimeout bitta qator uchun nota-lookup timeout
	EnrichTimeout = 5

	// EnrichPassTimeout butun enrichment bosqichi uchun timeout
	EnrichPassTimeout = 300
)
