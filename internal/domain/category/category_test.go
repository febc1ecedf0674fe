package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holodilnik/fridge-api/internal/domain/category"
)

// ──────────────────────────────────────────────────────────────────────────────
// Categorize
// ──────────────────────────────────────────────────────────────────────────────

// Каждое ключевое слово приводит к своей категории, регистр не важен.
func TestCategorize_PoKlyuchevymSlovam(t *testing.T) {
	cases := map[string]string{
		"Молоко 3.2%":      "молочные",
		"сметана деревенская": "молочные",
		"Огурец свежий":    "овощи",
		"КАРТОФЕЛЬ":        "овощи",
		"Банан":            "фрукты",
		"Колбаса докторская": "мясо",
		"вода минеральная": "напитки",
		"Хлеб бородинский": "хлеб",
		"Яйца куриные":     "яйца",
	}
	for name, want := range cases {
		assert.Equal(t, want, category.Categorize(name), "название: %q", name)
	}
}

// Название без известных ключевых слов попадает в категорию-заглушку.
func TestCategorize_NeizvestnoeNazvanie(t *testing.T) {
	assert.Equal(t, category.Fallback, category.Categorize("Шоколад"))
	assert.Equal(t, category.Fallback, category.Categorize("стиральный порошок"))
}

// Пустое и пробельное название дают заглушку.
func TestCategorize_PustoeNazvanie(t *testing.T) {
	assert.Equal(t, category.Fallback, category.Categorize(""))
	assert.Equal(t, category.Fallback, category.Categorize("   "))
	assert.Equal(t, category.Fallback, category.Categorize("\t\n"))
}

// При совпадении слов из двух категорий побеждает объявленная раньше:
// это часть наблюдаемого контракта, а не деталь реализации.
func TestCategorize_PrioritetPoryadkaObyavleniya(t *testing.T) {
	// "сок" (напитки) и "апельсин" (фрукты): фрукты объявлены раньше
	assert.Equal(t, "фрукты", category.Categorize("Сок апельсиновый"))
	// "молоко" (молочные) и "помидор" (овощи): молочные объявлены раньше
	assert.Equal(t, "молочные", category.Categorize("молоко и помидоры"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Каталог
// ──────────────────────────────────────────────────────────────────────────────

// Names сохраняет порядок объявления таблицы.
func TestNames_PoryadokObyavleniya(t *testing.T) {
	want := []string{"молочные", "овощи", "фрукты", "мясо", "напитки", "хлеб", "яйца"}
	assert.Equal(t, want, category.Names())
	assert.Equal(t, len(want), category.Total())
}

// Examples отдаёт не больше n слов на категорию.
func TestExamples_NeBolsheN(t *testing.T) {
	examples := category.Examples(3)
	require.Len(t, examples, category.Total())
	for name, kws := range examples {
		assert.LessOrEqual(t, len(kws), 3, "категория %q", name)
		assert.NotEmpty(t, kws, "категория %q", name)
	}
	assert.Equal(t, []string{"молоко", "сыр", "йогурт"}, examples["молочные"])
}

// Keywords ищет по точному названию категории.
func TestKeywords_TochnoeNazvanie(t *testing.T) {
	assert.Contains(t, category.Keywords("хлеб"), "батон")
	assert.Nil(t, category.Keywords("рыба"))
	assert.Nil(t, category.Keywords(""))
}
