// Package randomizer generates random strings for event names and payloads in tests.
package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

var (
	letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

	mu  sync.Mutex
	src = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// StringRunes generates a random string of runes of a specified length.
func StringRunes(n int) string {
	mu.Lock()
	defer mu.Unlock()

	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[src.Intn(len(letterRunes))]
	}
	return string(b)
}

// EventName returns prefix followed by a dash and ten random runes.
func EventName(prefix string) string {
	return prefix + "-" + StringRunes(10)
}
