package exchange

// Credentials is the immutable API credential pair an adapter is constructed
// with. Adapters keep it by value and never expose it.
type Credentials struct {
	Key    string
	Secret string
}
