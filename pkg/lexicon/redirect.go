package lexicon

// deferred is a taxon without identifier waiting for its accepted name.
type deferred struct {
	name    string
	taxonID string
}

// redirects buffers deferred taxa by the taxonID of their accepted name.
// A key is deleted when it is drained, so every deferred taxon is resolved
// at most once.
type redirects struct {
	byAccepted map[string][]deferred
	size       int
}

func newRedirects() *redirects {
	return &redirects{byAccepted: make(map[string][]deferred)}
}

func (r *redirects) add(acceptedID, name, taxonID string) {
	r.byAccepted[acceptedID] = append(
		r.byAccepted[acceptedID],
		deferred{name: name, taxonID: taxonID},
	)
	r.size++
}

// drain returns deferred taxa that point to acceptedID in the order they
// were added and forgets them.
func (r *redirects) drain(acceptedID string) []deferred {
	res, ok := r.byAccepted[acceptedID]
	if !ok {
		return nil
	}
	delete(r.byAccepted, acceptedID)
	r.size -= len(res)
	return res
}

// len is the number of taxa still waiting.
func (r *redirects) len() int {
	return r.size
}

func (r *redirects) reset() {
	clear(r.byAccepted)
	r.size = 0
}
