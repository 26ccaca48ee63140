package cli

import (
	"context"
	"fmt"
)

// syncNow runs an explicit push and reports the outcome to the user.
func (a *App) syncNow(ctx context.Context) {
	ok, err := a.sync.PushAll(ctx)
	if err != nil {
		fmt.Println("Sync error:", err)
		return
	}
	if !ok {
		fmt.Println("Sync failed, local data is intact. It will retry on the next change.")
		return
	}
	if a.isLoggedIn() {
		fmt.Println("Synced.")
	} else {
		fmt.Println("Not logged in, nothing to sync.")
	}
}

// pushQuietly runs the opportunistic push after a local change. Failures are
// deliberately silent here: the local write already succeeded and the next
// push carries the full snapshot anyway.
func (a *App) pushQuietly(ctx context.Context) {
	_, _ = a.sync.PushAll(ctx)
}
