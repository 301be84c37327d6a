package probe

import "context"

// Gate proves the KV store itself is reachable before any dependency check
// runs. The value behind the key is irrelevant; a fetch that does not error
// is the whole verdict.
type Gate struct {
	kv KV
}

func NewGate(kv KV) *Gate {
	return &Gate{kv: kv}
}

func (g *Gate) Check(ctx context.Context, checkKey string) Result {
	if _, err := g.kv.Get(ctx, checkKey, map[string]string{}); err != nil {
		return fail(err)
	}
	return Result{Success: true, Message: "Successful"}
}
