package referral

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/creatorchain/creatorchain/internal/domain"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxUnbiased is the largest multiple of len(alphabet) that fits in a byte
const maxUnbiased = 256 - (256 % len(alphabet))

// Generator mints referral link codes
//
//go:generate mockgen -source=code.go -destination=../mocks/referral.go -package=mocks -mock_names=Generator=MockCodeGenerator
type Generator interface {
	// Generate returns a new random URL-safe code
	Generate() (string, error)
}

type generator struct {
	length int
	random io.Reader
}

// NewGenerator creates a code generator backed by crypto/rand
func NewGenerator(length int) Generator {
	return newGeneratorWithReader(length, rand.Reader)
}

func newGeneratorWithReader(length int, random io.Reader) Generator {
	if length <= 0 {
		length = domain.DEFAULT_CODE_LENGTH
	}
	return &generator{length: length, random: random}
}

// Generate returns a new random alphanumeric code using rejection sampling
func (g *generator) Generate() (string, error) {
	code := make([]byte, 0, g.length)
	buf := make([]byte, g.length*2)

	for len(code) < g.length {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == g.length {
				break
			}
		}
	}

	return string(code), nil
}

// BuildURL joins the base URL and the share path for a code
func BuildURL(baseURL, code string) string {
	return strings.TrimRight(baseURL, "/") + domain.SHARE_PATH_PREFIX + code
}
