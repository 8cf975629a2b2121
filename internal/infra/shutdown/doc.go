// Package shutdown runs cleanup hooks when the process is interrupted.
//
// Usage:
//
//	h := shutdown.NewHandler(2 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return session.Close() })
//	go func() {
//		if sig, _ := h.Wait(ctx); sig != nil {
//			os.Exit(130)
//		}
//	}()
package shutdown
