package platform

// noopBridge accepts every call and returns null.
type noopBridge struct{}

func (noopBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	return DefaultCodec.Encode(nil)
}

// SetupTestBridge installs a no-op native bridge and a synchronous haptics
// dispatcher, and registers ResetForTest with cleanup.
//
//	platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) {
	SetNativeBridge(noopBridge{})
	Haptics.SetDispatcher(func(cb func()) { cb() })
	cleanup(ResetForTest)
}
