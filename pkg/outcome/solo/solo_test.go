package solo

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/errs"
	"github.com/ib-77/outcome/pkg/outcome/kind"
)

type user struct {
	Id     int
	Name   string
	Active bool
}

func expectArgumentNil(t *testing.T) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatal("expected a panic")
	}
	e, ok := r.(errs.Entity)
	if !ok || e.Code() != errs.CodeArgumentNil {
		t.Fatalf("expected ArgumentNil panic, got %v", r)
	}
}

func TestSelect_MapsSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Select(ctx, outcome.SuccessOf(user{Id: 1, Name: "ada"}),
		func(_ context.Context, u user) string { return u.Name })

	if res.ValueOrFail() != "ada" {
		t.Fatalf("expected ada, got %q", res.ValueOrFail())
	}
}

func TestSelect_NeverInvokedOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	in := outcome.ErrorOf[user](errs.NewNotFound("User", 1))

	res := Select(ctx, in, func(_ context.Context, u user) string {
		calls++
		return u.Name
	})

	if calls != 0 {
		t.Fatalf("mapping function must not run on the error arm, ran %d times", calls)
	}
	if !res.IsError() {
		t.Fatal("error arm must pass through")
	}
}

func TestThen_ShortCircuitsOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	in := outcome.ErrorOf[int](errs.NewFailure("broken", nil))

	Then(ctx, in, func(_ context.Context, v int) outcome.Of[string] {
		calls++
		return outcome.SuccessOf(strconv.Itoa(v))
	})

	if calls != 0 {
		t.Fatalf("continuation must not run on the error arm, ran %d times", calls)
	}
}

func TestThen_PropagatesContinuationErrorByIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := errs.NewConflict(errs.Duplicate, "Order", nil)

	res := Then(ctx, outcome.SuccessOf(1),
		func(_ context.Context, _ int) outcome.Of[string] {
			return outcome.ErrorOf[string](e)
		})

	if res.ErrorOrFail() != errs.Entity(e) {
		t.Fatal("a same-typed continuation error must propagate by identity")
	}
}

func TestThen_LiftsAcrossErrorTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src := errs.NewNotFound("User", 9)
	in := outcome.Error[int, *errs.NotFound](src)

	res := Then(ctx, in, func(_ context.Context, v int) outcome.Outcome[string, *errs.Failure] {
		return outcome.Success[string, *errs.Failure]("unreachable")
	})

	got := res.ErrorOrFail()
	if got.Kind() != kind.Failure {
		t.Fatalf("expected lifted Failure, got %s", got.Kind())
	}
	if got.Cause() != errs.Entity(src) {
		t.Fatal("lifted error must keep the source as cause, identical to the original")
	}
}

func TestEnsure_TruePredicateKeepsOutcome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := outcome.SuccessOf(user{Id: 1, Active: true})
	res := Ensure(ctx, in,
		func(_ context.Context, u user) bool { return u.Active },
		errs.Entity(errs.NewFailure("inactive", nil)))

	if res.ValueOrFail() != in.ValueOrFail() {
		t.Fatal("true predicate must leave the outcome unchanged")
	}
}

func TestEnsure_FalsePredicateReplaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := errs.NewValidation("user is inactive", nil)
	res := Ensure(ctx, outcome.SuccessOf(user{Active: false}),
		func(_ context.Context, u user) bool { return u.Active },
		errs.Entity(e))

	if res.ErrorOrFail() != errs.Entity(e) {
		t.Fatal("false predicate must replace the outcome with the supplied error")
	}
}

func TestEnsure_PredicateNeverRunsOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	in := outcome.ErrorOf[user](errs.NewNotFound("User", 2))

	res := Ensure(ctx, in,
		func(_ context.Context, _ user) bool { calls++; return true },
		errs.Entity(errs.NewFailure("unused", nil)))

	if calls != 0 {
		t.Fatalf("predicate must not run on the error arm, ran %d times", calls)
	}
	if res.ErrorOrFail() != in.ErrorOrFail() {
		t.Fatal("existing error must pass through unchanged")
	}
}

func TestEnsureWith_SynthesizesTypedError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cause := errs.NewFailure("too small", nil)
	in := outcome.Success[int, *errs.Validation](3)

	res := EnsureWith(ctx, in,
		func(_ context.Context, v int) bool { return v > 10 },
		cause)

	got := res.ErrorOrFail()
	if got.Kind() != kind.Validation {
		t.Fatalf("expected synthesized Validation, got %s", got.Kind())
	}
	if got.Cause() != errs.Entity(cause) {
		t.Fatal("synthesized error must wrap the supplied cause")
	}
}

func TestRecover_ReAdmitsSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := outcome.ErrorOf[int](errs.NewFailure("temporarily unavailable", nil))

	res := Recover(ctx, in, func(_ context.Context, e errs.Entity) outcome.Of[int] {
		return outcome.SuccessOf(0)
	})

	if !res.IsSuccess() {
		t.Fatal("recover must be able to re-admit a success")
	}
}

func TestRecover_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	res := Recover(ctx, outcome.SuccessOf(5), func(_ context.Context, e errs.Entity) outcome.Of[int] {
		calls++
		return outcome.SuccessOf(0)
	})

	if calls != 0 {
		t.Fatalf("recovery must not run on the success arm, ran %d times", calls)
	}
	if res.ValueOrFail() != 5 {
		t.Fatal("success arm must pass through")
	}
}

func TestOrElse_Fallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := OrElse(ctx, outcome.SuccessOf(7), -1); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := OrElse(ctx, outcome.ErrorOf[int](errs.NewFailure("x", nil)), -1); got != -1 {
		t.Fatalf("expected fallback -1, got %d", got)
	}
}

func TestOrElseBy_NilFunctionPanicsFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	defer expectArgumentNil(t)

	// Even a success outcome must panic: the check precedes any evaluation.
	OrElseBy[int, errs.Entity](ctx, outcome.SuccessOf(1), nil)
}

func TestOrElseErr_NilForwardPanicsFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	defer expectArgumentNil(t)

	OrElseErr(ctx, outcome.SuccessOf(1), errs.Entity(nil))
}

func TestOrElseErr_ReplacesError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	forward := errs.NewFailure("forwarded", nil)
	res := OrElseErr(ctx, outcome.ErrorOf[int](errs.NewNotFound("User", 1)), errs.Entity(forward))

	if res.ErrorOrFail() != errs.Entity(forward) {
		t.Fatal("error arm must be replaced by the forwarding error")
	}
}

func TestMatch_NilHandlersPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	defer expectArgumentNil(t)

	Match(ctx, outcome.SuccessOf(1),
		nil,
		func(_ context.Context, e errs.Entity) string { return "err" })
}

func TestMatch_ExactlyOneHandlerFires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rng := rand.New(rand.NewSource(251))

	const calls = 1000
	successFires, errorFires := 0, 0

	for range calls {
		var in outcome.Of[int]
		if rng.Intn(2) == 0 {
			in = outcome.SuccessOf(rng.Int())
		} else {
			in = outcome.ErrorOf[int](errs.NewFailure("random", nil))
		}

		Match(ctx, in,
			func(_ context.Context, _ int) struct{} { successFires++; return struct{}{} },
			func(_ context.Context, _ errs.Entity) struct{} { errorFires++; return struct{}{} })
	}

	if successFires+errorFires != calls {
		t.Fatalf("total handler fires %d must equal total calls %d",
			successFires+errorFires, calls)
	}
}

func TestIfSomeIfNone_EffectOnPresentArmOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	some, none := 0, 0
	in := outcome.SuccessOf(1)

	res := IfSome(ctx, in, func(_ context.Context, _ int) { some++ })
	res = IfNone(ctx, res, func(_ context.Context, _ errs.Entity) { none++ })

	if some != 1 || none != 0 {
		t.Fatalf("expected only the success effect, got some=%d none=%d", some, none)
	}
	if res.ValueOrFail() != 1 {
		t.Fatal("inspection must return the outcome unchanged")
	}
}

func TestThenDoElseDo_Terminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ran := 0
	ThenDo(ctx, outcome.SuccessOf("x"), func(_ context.Context, _ string) { ran++ })
	ElseDo(ctx, outcome.SuccessOf("x"), func(_ context.Context, _ errs.Entity) { ran += 10 })

	if ran != 1 {
		t.Fatalf("expected only the success effect, got %d", ran)
	}
}

func TestTry_WrapsPlatformError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	res := Try(ctx, outcome.SuccessOf(1),
		func(_ context.Context, _ int) (string, error) { return "", boom })

	got := res.ErrorOrFail()
	if got.Kind() != kind.Unexpected {
		t.Fatalf("expected Unexpected, got %s", got.Kind())
	}
	if !errors.Is(got, boom) {
		t.Fatal("wrapped platform error must stay reachable")
	}
}

// Scenario from the error side: the original error survives Select and
// reaches the error handler untouched.
func TestScenario_NotFoundSurvivesSelectToMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src := errs.NewNotFound("User", 123)
	in := outcome.ErrorOf[user](src)

	mapped := Select(ctx, in, func(_ context.Context, u user) string { return u.Name })

	got := Match(ctx, mapped,
		func(_ context.Context, _ string) errs.Entity { return nil },
		func(_ context.Context, e errs.Entity) errs.Entity { return e })

	if got != errs.Entity(src) {
		t.Fatal("the original error must arrive unchanged")
	}
	if got.Code() != "NotFound.User" {
		t.Fatalf("expected code NotFound.User, got %q", got.Code())
	}
}

// Scenario from the success side: guard, map, unwrap.
func TestScenario_EnsureSelectValueOrFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	someError := errs.Entity(errs.NewValidation("inactive user", nil))

	in := outcome.SuccessOf(user{Id: 1, Active: true})
	guarded := Ensure(ctx, in, func(_ context.Context, u user) bool { return u.Active }, someError)
	id := Select(ctx, guarded, func(_ context.Context, u user) int { return u.Id })

	if id.ValueOrFail() != 1 {
		t.Fatalf("expected 1, got %d", id.ValueOrFail())
	}
}
