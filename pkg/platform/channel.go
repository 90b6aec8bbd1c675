package platform

// MethodHandler serves calls made by native code on a channel.
type MethodHandler func(method string, args any) (any, error)

// MethodChannel is a named, bidirectional method-call channel.
type MethodChannel struct {
	name    string
	handler MethodHandler
}

// NewMethodChannel creates and registers a channel. Registering a second
// channel with the same name replaces the first.
func NewMethodChannel(name string) *MethodChannel {
	ch := &MethodChannel{name: name}
	registry.register(name, ch)
	return ch
}

// Name returns the channel name.
func (c *MethodChannel) Name() string {
	return c.name
}

// SetHandler installs the handler for calls coming from native code.
func (c *MethodChannel) SetHandler(handler MethodHandler) {
	c.handler = handler
}

// Invoke calls method on the native side and blocks for the result.
func (c *MethodChannel) Invoke(method string, args any) (any, error) {
	return invokeNative(c.name, method, args)
}

func (c *MethodChannel) handleCall(method string, args any) (any, error) {
	if c.handler == nil {
		return nil, ErrMethodNotFound
	}
	return c.handler(method, args)
}
