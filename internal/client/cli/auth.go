package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	res := a.store.Login(ctx, email, string(password))
	if !res.Success {
		a.fail(res.Message)
		return errors.New(res.Message)
	}

	name := email
	if res.User != nil && res.User.Name != "" {
		name = res.User.Name
	}
	a.notes.Success("Bienvenido, " + name)
	fmt.Fprintf(a.out, "Logged in as %s\n", name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	a.notes.Info("Sesión cerrada")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", u.Name, u.Email, u.RoleName())
	return nil
}

// SessionInfo prints what is persisted locally for the session.
func (a *App) SessionInfo(ctx context.Context) error {
	keys, err := a.session.Keys(ctx)
	if err != nil {
		a.fail("Error al leer la sesión local")
		return err
	}
	fmt.Fprintf(a.out, "generation=%d state=%s keys=%s\n",
		a.session.Generation(), a.auth.State(), strings.Join(keys, ","))
	return nil
}
