package deck

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	WhiteIdPrefix = "w-"
	BlackIdPrefix = "b-"
)

type IdGenerator interface {
	Generate(prefix string) string
}

// UUIDGenerator hands out time-ordered UUIDv7 identifiers, so ids created later
// in an editing session sort after earlier ones.
type UUIDGenerator struct {
	fallback atomic.Uint64
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy failure; still unique within the process
		n := g.fallback.Add(1)
		return prefix + strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + strconv.FormatUint(n, 36)
	}
	return prefix + id.String()
}

// SequenceGenerator numbers ids per prefix in call order, under a scope such
// as the deck name. Two fresh generators fed the same cards agree on every id.
type SequenceGenerator struct {
	scope string
	next  map[string]int
}

func NewSequenceGenerator(scope string) *SequenceGenerator {
	return &SequenceGenerator{scope: scope, next: map[string]int{}}
}

func (g *SequenceGenerator) Generate(prefix string) string {
	g.next[prefix]++
	return fmt.Sprintf("%s%s-%d", prefix, g.scope, g.next[prefix])
}
