package uvector

import (
	"os"

	"github.com/charmbracelet/log"
)

// DefaultGrowthFactor is the headroom applied when growth is triggered by a
// requested length: capacity becomes ceil(length × factor).
const DefaultGrowthFactor = 1.2

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "uvector",
	Level:  log.WarnLevel,
})

// Option configures a Vector.
type Option[T any] func(*Vector[T])

// WithGrowthFactor sets the growth headroom. Factors below 1 are ignored.
func WithGrowthFactor[T any](f float64) Option[T] {
	return func(v *Vector[T]) {
		if f >= 1 {
			v.growth = f
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger[T any](l *log.Logger) Option[T] {
	return func(v *Vector[T]) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithLabel names the vector's storage in allocators that implement Labeler.
// The label follows the storage across reallocations through Relocate.
func WithLabel[T any](label string) Option[T] {
	return func(v *Vector[T]) { v.label = label }
}

// WithConstruct runs fn on every slot as it becomes live, before any value
// is copied into it.
func WithConstruct[T any](fn func(*T)) Option[T] {
	return func(v *Vector[T]) { v.constructFn = fn }
}

// WithCopy replaces plain assignment for element copies: pushes, fills,
// storage migration and deep copies.
func WithCopy[T any](fn func(dst, src *T)) Option[T] {
	return func(v *Vector[T]) { v.copyFn = fn }
}

// WithDestroy runs fn on every live slot before it dies. Storage migration
// copies then destroys, so a type whose destroy hook releases resources
// needs a WithCopy hook that duplicates them.
func WithDestroy[T any](fn func(*T)) Option[T] {
	return func(v *Vector[T]) { v.destroyFn = fn }
}
