// Package category — категоризация товаров по ключевым словам в названии.
// Таблица категорий фиксирована и неизменяема на всё время работы процесса;
// это единственное место, где она обходится: каталог, фильтр и поиск
// пользуются функциями пакета, а не собственными копиями таблицы.
package category

import "strings"

// Fallback — категория, когда ни одно ключевое слово не совпало.
const Fallback = "другое"

type entry struct {
	name     string
	keywords []string
}

// catalog — фиксированная таблица категорий. Порядок объявления задаёт
// приоритет совпадения, поэтому срез, а не map.
var catalog = []entry{
	{"молочные", []string{"молоко", "сыр", "йогурт", "кефир", "творог", "сметана", "масло", "сливки"}},
	{"овощи", []string{"помидор", "огурец", "картофель", "морковь", "лук", "капуста", "перец"}},
	{"фрукты", []string{"яблоко", "банан", "апельсин", "лимон", "груша", "виноград"}},
	{"мясо", []string{"колбаса", "сосиски", "курица", "говядина", "свинина", "ветчина"}},
	{"напитки", []string{"сок", "вода", "чай", "кофе", "лимонад", "компот"}},
	{"хлеб", []string{"хлеб", "батон", "булка", "лаваш", "сухари"}},
	{"яйца", []string{"яйца", "яичница", "омлет"}},
}

// Categorize возвращает категорию по названию товара: первая по порядку
// объявления категория, любое ключевое слово которой входит в название
// как подстрока (без учёта регистра). Пустое или состоящее из пробелов
// название даёт Fallback.
func Categorize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Fallback
	}
	for _, e := range catalog {
		for _, kw := range e.keywords {
			if strings.Contains(name, kw) {
				return e.name
			}
		}
	}
	return Fallback
}

// Names возвращает названия категорий в порядке объявления.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, e := range catalog {
		names = append(names, e.name)
	}
	return names
}

// Total — количество категорий в таблице.
func Total() int {
	return len(catalog)
}

// Examples возвращает до n первых ключевых слов на категорию
// (для эндпоинта каталога категорий).
func Examples(n int) map[string][]string {
	out := make(map[string][]string, len(catalog))
	for _, e := range catalog {
		k := n
		if k > len(e.keywords) {
			k = len(e.keywords)
		}
		out[e.name] = append([]string(nil), e.keywords[:k]...)
	}
	return out
}

// Keywords возвращает копию списка ключевых слов категории по её точному
// названию; nil — если такой категории нет.
func Keywords(name string) []string {
	for _, e := range catalog {
		if e.name == name {
			return append([]string(nil), e.keywords...)
		}
	}
	return nil
}
