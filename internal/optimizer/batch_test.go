package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectBatching(t *testing.T) {
	t.Run("AdjacentEffectsMergeIntoOne", func(t *testing.T) {
		source := `let n = signal(1);
effect(() => log(n()));
effect(() => trace(n()));
print(n());`
		result := optimizeSource(t, source, ModeAggressive)

		expected := `let n = signal(1);
effect(() => {
  log(n());
  trace(n());
});
print(n());`
		assert.Equal(t, expected, result.Program.String())
		require.Len(t, result.Changes, 1)
		assert.Equal(t, Merge, result.Changes[0].Kind)
		assert.Equal(t, "Batched 2 effect registrations into one", result.Changes[0].Description)
	})

	t.Run("BlockBodiesConcatenateInOrder", func(t *testing.T) {
		source := `effect(() => {
  first();
});
effect(() => {
  second();
  third();
});`
		result := optimizeSource(t, source, ModeAggressive)

		expected := `effect(() => {
  first();
  second();
  third();
});`
		assert.Equal(t, expected, result.Program.String())
		require.Len(t, result.Changes, 1)
	})

	t.Run("SeparatedEffectsAreNotBatched", func(t *testing.T) {
		source := `effect(() => log(1));
print(2);
effect(() => log(3));`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("DifferentRegistrarsAreNotBatched", func(t *testing.T) {
		source := `effect(() => log(1));
onCleanup(() => log(2));`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("DisabledBySwitch", func(t *testing.T) {
		opts := DefaultOptions(ModeAggressive)
		opts.BatchEffects = false
		source := `effect(() => log(1));
effect(() => log(2));`
		result := Optimize(mustParse(t, source), opts)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})
}
