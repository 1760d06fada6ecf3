// Copyright © 2024 The Ember authors

package lang_test

import (
	"testing"

	"github.com/emberlang/ember/embertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_Arithmetic(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `print 1 + 2;`)
	require.False(t, result.HadCompileError)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "3\n", result.Stdout)
}

func TestInterpret_IntegralFloatsPrintWithoutFraction(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `print 6 / 2;`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "3\n", result.Stdout)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `print "a" + "b";`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "ab\n", result.Stdout)
}

func TestInterpret_BlockScopingShadowsOuter(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "inner\nouter\n", result.Stdout)
}

func TestInterpret_ClosureCapturesEnvironment(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "1\n2\n3\n", result.Stdout)
}

func TestInterpret_SingleInheritanceAndSuper(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof";
			}
		}
		Dog().speak();
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "...\nWoof\n", result.Stdout)
}

func TestInterpret_InitializerAlwaysReturnsThis(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		class Box {
			init(value) {
				this.value = value;
				return;
			}
		}
		var b = Box(42);
		print b.value;
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "42\n", result.Stdout)
}

func TestInterpret_GetterInvokedWithoutParens(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		class Circle {
			init(radius) {
				this.radius = radius;
			}
			diameter {
				return this.radius * 2;
			}
		}
		print Circle(3).diameter;
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "6\n", result.Stdout)
}

func TestInterpret_RuntimeTypeErrorFormat(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `print "a" + 1;`)
	assert.True(t, result.HadRuntimeError)
	assert.False(t, result.HadCompileError)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", result.Stderr)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `print fnord;`)
	assert.True(t, result.HadRuntimeError)
	assert.Contains(t, result.Stderr, "Undefined variable 'fnord'.")
}

func TestInterpret_WhileLoopBreak(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		var i = 0;
		while (true) {
			if (i >= 3) break;
			print i;
			i = i + 1;
		}
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "0\n1\n2\n", result.Stdout)
}

func TestInterpret_BreakInNestedFunctionDoesNotEscapeToOuterLoop(t *testing.T) {
	// The resolver rejects this before execution; interpretation never
	// runs, so no output and a compile-time error is reported instead.
	r := &embertest.Runner{}
	result := r.Run(t, `
		while (true) {
			fun f() {
				break;
			}
			f();
			break;
		}
	`)
	assert.True(t, result.HadCompileError)
	assert.False(t, result.HadRuntimeError)
}

func TestInterpret_ThisInStaticMethodIsCompileErrorNotPanic(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		class MathUtil {
			class describe() {
				print this;
			}
		}
		MathUtil.describe();
	`)
	assert.True(t, result.HadCompileError)
	assert.False(t, result.HadRuntimeError)
}

func TestInterpret_StaticMethodCallableOnClassItself(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		class MathUtil {
			class square(x) {
				return x * x;
			}
		}
		print MathUtil.square(4);
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "16\n", result.Stdout)
}

func TestInterpret_NativeFunctionStringification(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `print clock;`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "<native fn>\n", result.Stdout)
}

func TestInterpret_FunctionStringification(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		fun greet() {}
		print greet;
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "<fn greet>\n", result.Stdout)
}

func TestInterpret_InstanceStringification(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		class Bagel {}
		print Bagel();
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "Bagel instance\n", result.Stdout)
}

func TestInterpret_LogicalOperatorsShortCircuit(t *testing.T) {
	r := &embertest.Runner{}
	result := r.Run(t, `
		fun sideEffect() {
			print "called";
			return true;
		}
		print false and sideEffect();
		print true or sideEffect();
	`)
	require.False(t, result.HadRuntimeError)
	assert.Equal(t, "false\ntrue\n", result.Stdout)
}
