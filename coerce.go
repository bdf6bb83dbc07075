package parsec

import (
	"context"
	"strconv"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// Coerce returns a parser that runs p on a fresh result accumulator and
// folds everything p produced into a single value with coercion fn. The
// folded value is appended to the caller's results.
func Coerce(fn func([]interface{}) interface{}, p Parser) Parser {
	return func(st State) (State, error) {
		inner := State{Remaining: st.Remaining, Pos: st.Pos}
		next, err := p(inner)
		if err != nil {
			return State{}, err
		}
		res := st.push(fn(next.Value))
		res.Remaining = next.Remaining
		res.Pos = next.Pos
		return res, nil
	}
}

// Text returns a parser that runs p and joins the runes it produced into a
// single string value.
func Text(p Parser) Parser {
	return Coerce(joinStrings, p)
}

// AsInt returns a parser that runs p and converts the runes it produced
// into an int value.
func AsInt(p Parser) Parser {
	return Coerce(func(vals []interface{}) interface{} {
		s := joinStrings(vals).(string)
		n, err := strconv.Atoi(s)
		if err != nil {
			// p matched sign and digits, so only overflow gets us here
			tracer().Errorf("parsec: integer %q out of range", s)
		}
		return n
	}, p)
}

// AsList returns a parser that runs p and collects the values it produced
// into a single slice value.
func AsList(p Parser) Parser {
	return Coerce(func(vals []interface{}) interface{} {
		res := make([]interface{}, len(vals))
		copy(res, vals)
		return res
	}, p)
}

// Join buffers are short-lived objects, borrowed for the duration of a
// single coercion. To avoid allocating a fresh builder for every Text
// match we pool them.
type joinBuffer struct {
	b strings.Builder
}

type joinBufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalJoinBufferPool *joinBufferPool

func init() {
	globalJoinBufferPool = &joinBufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &joinBuffer{}, nil
		})
	globalJoinBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalJoinBufferPool.opool = pool.NewObjectPool(globalJoinBufferPool.ctx, factory, config)
}

func borrowJoinBuffer() *joinBuffer {
	o, _ := globalJoinBufferPool.opool.BorrowObject(globalJoinBufferPool.ctx)
	buf := o.(*joinBuffer)
	buf.b.Reset()
	return buf
}

func (buf *joinBuffer) releaseIntoPool() {
	_ = globalJoinBufferPool.opool.ReturnObject(globalJoinBufferPool.ctx, buf)
}

func joinStrings(vals []interface{}) interface{} {
	buf := borrowJoinBuffer()
	defer buf.releaseIntoPool()
	for _, v := range vals {
		buf.b.WriteString(v.(string))
	}
	return buf.b.String()
}
