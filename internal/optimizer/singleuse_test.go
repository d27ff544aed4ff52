package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleUseConversion(t *testing.T) {
	t.Run("LiteralSingleUseHandledByConstantInlining", func(t *testing.T) {
		source := `const temp = cell(42);
print(temp());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, "print(42);", result.Program.String())
		require.Len(t, result.Changes, 1)
		assert.Equal(t, SignalInline, result.Changes[0].Kind)
	})

	t.Run("PureComputedInitializerInlined", func(t *testing.T) {
		source := `let doubled = cell(width * 2);
print(doubled());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, "print(width * 2);", result.Program.String())
		require.Len(t, result.Changes, 1)
		assert.Equal(t, SingleUse, result.Changes[0].Kind)
		assert.Equal(t, "Converted single-use signal 'doubled' to an inline value", result.Changes[0].Description)
	})

	t.Run("EffectfulInitializerMovesOnlyToAdjacentRead", func(t *testing.T) {
		source := `let data = cell(fetch());
print(data());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, "print(fetch());", result.Program.String())
		assert.Equal(t, []ChangeKind{SingleUse}, changeKinds(result))
	})

	t.Run("EffectfulInitializerStaysWhenReadIsNotAdjacent", func(t *testing.T) {
		source := `let data = cell(fetch());
print("other");
print(data());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("EffectfulInitializerStaysWhenReadIsNotFirstEffect", func(t *testing.T) {
		// Adjacent, but other() runs before the read of data; moving
		// fetch() into the argument slot would run it too late.
		source := `let data = cell(fetch());
print(other(), data());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("EffectfulInitializerMovesWhenReadIsFirstEffect", func(t *testing.T) {
		source := `let data = cell(fetch());
print(data(), other());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, "print(fetch(), other());", result.Program.String())
		assert.Equal(t, []ChangeKind{SingleUse}, changeKinds(result))
	})

	t.Run("TwoReadsDisqualify", func(t *testing.T) {
		source := `let size = cell(width * 2);
print(size());
log(size());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("WriteDisqualifies", func(t *testing.T) {
		source := `let size = cell(width * 2);
print(size());
setSize(9);`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("DeferredReadDisqualifies", func(t *testing.T) {
		source := `let pos = cell(x * 2);
effect(() => move(pos()));`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("ReadInsideNestedBlockAdjacentToDecl", func(t *testing.T) {
		source := `fn demo() {
  let data = cell(load());
  use(data());
}`
		result := optimizeSource(t, source, ModeAggressive)

		expected := `fn demo() {
  use(load());
}`
		assert.Equal(t, expected, result.Program.String())
		assert.Equal(t, []ChangeKind{SingleUse}, changeKinds(result))
	})
}
