package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalInlining(t *testing.T) {
	t.Run("ConstantSignalInlinedAtEveryRead", func(t *testing.T) {
		source := `let max = signal(100);
print(max() + 1);
print(max());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, "print(101);\nprint(100);", result.Program.String())
		require.Len(t, result.Changes, 2)
		assert.Equal(t, SignalInline, result.Changes[0].Kind)
		assert.Equal(t, "Inlined constant signal 'max' (2 read sites)", result.Changes[0].Description)
		assert.Equal(t, ConstantFold, result.Changes[1].Kind)
	})

	t.Run("StringAndBoolInitializersInline", func(t *testing.T) {
		source := `let label = signal("ready");
let on = createSignal(true);
print(label());
print(on());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, "print(\"ready\");\nprint(true);", result.Program.String())
		assert.Equal(t, []ChangeKind{SignalInline, SignalInline}, changeKinds(result))
	})

	t.Run("WrittenSignalNeverInlined", func(t *testing.T) {
		source := `let count = signal(0);
print(count());
setCount(5);`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("DeferredCaptureBlocksInlining", func(t *testing.T) {
		source := `let theme = signal("dark");
effect(() => apply(theme()));`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("ComputedInitializerNotConstant", func(t *testing.T) {
		source := `let total = signal(base + 1);
print(total());
print(total());`
		result := optimizeSource(t, source, ModeAggressive)

		// Two reads rule out single-use conversion as well.
		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("MalformedDeclarationLeftAlone", func(t *testing.T) {
		source := `let broken = signal();
print(broken());`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("ShadowedSignalNameIsNeverInlined", func(t *testing.T) {
		// Both functions declare their own x; reads must not be rewritten
		// to the other function's initializer.
		source := `fn a() {
  let x = signal(other());
  print(x());
}
fn b() {
  let x = signal(1);
  print(x());
}`
		result := optimizeSource(t, source, ModeAggressive)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("InliningDisabledInBasicMode", func(t *testing.T) {
		source := `let max = signal(100);
print(max());`
		result := optimizeSource(t, source, ModeBasic)

		assert.Equal(t, source, result.Program.String())
		assert.Empty(t, result.Changes)
	})

	t.Run("InliningCanMakeTemplateStatic", func(t *testing.T) {
		source := `let name = signal("sam");
fn App() {
  return <div>{name()}</div>;
}`
		result := optimizeSource(t, source, ModeAggressive)

		expected := `const _tmpl$1 = <div>{"sam"}</div>;
fn App() {
  return _tmpl$1;
}`
		assert.Equal(t, expected, result.Program.String())
		assert.Equal(t, []ChangeKind{SignalInline, Hoist}, changeKinds(result))
	})
}
