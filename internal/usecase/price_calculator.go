package usecase

import (
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// CalculatePrice so'ralgan hajm uchun narxni hisoblash. Hajm diapazonga
// aylantiriladi va o'sha diapazonning narxi ishlatiladi; diapazon narxi
// yo'q bo'lsa nil qaytadi - boshqa diapazon narxi hech qachon o'rniga
// qo'yilmaydi. Diapazon tanlash yagona chegirma mexanizmi.
func CalculatePrice(variant entity.ProductVariant, requestedVolume float64) *entity.PriceQuote {
	if requestedVolume <= 0 {
		return nil
	}

	bracket := entity.BracketForVolume(requestedVolume)
	price := variant.PriceTiers[bracket]
	if price == nil {
		return nil
	}

	return &entity.PriceQuote{
		Bracket:      bracket,
		PricePerUnit: *price,
		TotalPrice:   *price * requestedVolume,
	}
}
