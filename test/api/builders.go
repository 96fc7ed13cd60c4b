package api

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	firstNames = []string{"Pyotr", "Naruto", "Anna", "Ivan", "Olga", "Sakura", "Dmitry", "Elena"}
	lastNames  = []string{"Uzumaki", "Ivanov", "Petrova", "Smirnov", "Haruno", "Sokolova"}
	streets    = []string{"Konoha", "Tverskaya", "Arbat", "Lenina", "Pushkina", "Mira"}
	comments   = []string{"Saske, come back to Konoha", "Call before delivery", "", "Leave at the door"}
)

// randomSuffix returns n lowercase hex characters.
func randomSuffix(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, randomSuffix(8))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

func pick[T any](values []T) T {
	return values[rand.IntN(len(values))]
}

// RandomCourier returns a courier whose login is unlikely to exist already.
func RandomCourier() Courier {
	return Courier{
		Login:     "courier" + randomSuffix(10),
		Password:  randomSuffix(8),
		FirstName: pick(firstNames),
	}
}

// RandomOrder returns a valid order with the given colors.
func RandomOrder(colors ...Color) Order {
	if colors == nil {
		colors = []Color{}
	}

	return Order{
		FirstName:    pick(firstNames),
		LastName:     pick(lastNames),
		Address:      fmt.Sprintf("%s, %d apt.", pick(streets), rand.IntN(200)+1),
		MetroStation: rand.IntN(200) + 1,
		Phone:        fmt.Sprintf("+7 9%02d %03d %02d %02d", rand.IntN(100), rand.IntN(1000), rand.IntN(100), rand.IntN(100)),
		RentTime:     rand.IntN(7) + 1,
		DeliveryDate: time.Now().AddDate(0, 0, rand.IntN(14)+1).Format(time.DateOnly),
		Comment:      pick(comments),
		Color:        colors,
	}
}
