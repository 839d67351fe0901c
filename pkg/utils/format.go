package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPhone приводит ввод к виду +7 (999) 123-45-67. Форматирование
// инкрементальное: неполный номер получает столько маски, сколько набрано.
func FormatPhone(value string) string {
	var digits []rune
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	n := len(digits)
	if n == 0 {
		return ""
	}

	slice := func(from, to int) string {
		if to > n {
			to = n
		}
		if from >= to {
			return ""
		}
		return string(digits[from:to])
	}

	switch {
	case n <= 1:
		return "+7 (" + string(digits)
	case n <= 4:
		return "+7 (" + slice(1, 4)
	case n <= 7:
		return "+7 (" + slice(1, 4) + ") " + slice(4, 7)
	case n <= 9:
		return "+7 (" + slice(1, 4) + ") " + slice(4, 7) + "-" + slice(7, 9)
	default:
		return "+7 (" + slice(1, 4) + ") " + slice(4, 7) + "-" + slice(7, 9) + "-" + slice(9, 11)
	}
}

// FormatPrice форматирует цену с разбиением на тысячи как в ru-RU локали,
// разделитель — неразрывный пробел.
func FormatPrice(price int) string {
	negative := price < 0
	if negative {
		price = -price
	}

	var groups []string
	for {
		rem := price % 1000
		price /= 1000
		if price == 0 {
			groups = append([]string{strconv.Itoa(rem)}, groups...)
			break
		}
		groups = append([]string{fmt.Sprintf("%03d", rem)}, groups...)
	}

	result := strings.Join(groups, " ") + " ₽"
	if negative {
		result = "-" + result
	}
	return result
}
