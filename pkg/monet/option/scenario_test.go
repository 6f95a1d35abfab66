package option_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monet/pkg/monet/option"
)

func parseToInt(s string) option.Option[int] {
	return option.TryE(func() (int, error) { return strconv.Atoi(s) })
}

func integerDivision(dividend, divisor int) option.Option[int] {
	if divisor == 0 {
		return option.FromNone[int](option.Nothing)
	}
	return option.Some(dividend / divisor)
}

func TestParseAndDivide(t *testing.T) {
	t.Parallel()

	divideBy := func(divisor int) func(int) option.Option[int] {
		return func(n int) option.Option[int] { return integerDivision(n, divisor) }
	}
	pick := func(_, divided int) int { return divided }

	assert.Equal(t, option.Some(3), option.Bind(parseToInt("6"), divideBy(2)))
	assert.Equal(t, option.Some(3), option.BindProject(parseToInt("6"), divideBy(2), pick))

	assert.Equal(t, option.None[int](), option.Bind(parseToInt("q"), divideBy(2)))
	assert.Equal(t, option.None[int](), option.BindProject(parseToInt("q"), divideBy(2), pick))

	assert.Equal(t, option.None[int](), option.Bind(parseToInt("6"), divideBy(0)))
	assert.Equal(t, option.None[int](), option.BindProject(parseToInt("6"), divideBy(0), pick))
}

func TestMapIdentity(t *testing.T) {
	t.Parallel()

	id := func(s string) string { return s }
	for _, o := range []option.Option[string]{option.Some("abc"), option.Some(""), option.None[string]()} {
		if diff := cmp.Diff(o, option.Map(o, id)); diff != "" {
			t.Fatalf("Map(id) changed %v (-want +got):\n%s", o, diff)
		}
	}
}

func TestNullablePayload(t *testing.T) {
	t.Parallel()

	zero, one := 0, 1
	sum := func(a, b *int) *int {
		s := *a + *b
		return &s
	}
	bindTo := func(o option.Option[*int]) func(*int) option.Option[*int] {
		return func(*int) option.Option[*int] { return o }
	}

	zeroMaybe := option.Of(&zero)
	require.True(t, zeroMaybe.IsSome(), "a pointer to zero is present")

	oneMaybe := option.Of(&one)
	got := option.BindProject(zeroMaybe, bindTo(oneMaybe), sum)
	require.True(t, got.IsSome())
	v, _ := got.Get()
	assert.Equal(t, 1, *v)
	assert.True(t, cmp.Equal(option.Some(&one), got))

	oneMaybe = option.Of[*int](nil)
	got = option.BindProject(zeroMaybe, bindTo(oneMaybe), sum)
	assert.True(t, got.IsNone())
	assert.Equal(t, option.None[*int](), got)

	assert.Equal(t, option.Some(0), option.Flatten(option.Map(zeroMaybe, option.FromPtr[int])))
}

func TestNilStringPointerIsNone(t *testing.T) {
	t.Parallel()

	type inner struct{ str *string }
	lookup := func(items []*inner, i int) option.Option[string] {
		return option.Flatten(option.Try(func() option.Option[string] {
			return option.FromPtr(items[i].str)
		}))
	}

	foo := "foo"
	items := []*inner{{str: &foo}, nil}

	assert.Equal(t, option.Some("foo"), lookup(items, 0))
	assert.Equal(t, option.None[string](), lookup(items, 1))
	assert.Equal(t, option.None[string](), lookup(items, 2))
}

func TestTryParseRequestID(t *testing.T) {
	t.Parallel()

	parse := func(s string) option.Option[uuid.UUID] {
		return option.Try(func() uuid.UUID { return uuid.MustParse(s) })
	}

	id := uuid.New()
	assert.Equal(t, option.Some(id), parse(id.String()))
	assert.True(t, parse("not-a-uuid").IsNone())
	assert.Equal(t, uuid.Nil, parse("").GetValueOrDefault(uuid.Nil))
}
