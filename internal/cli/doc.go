// Package cli is the interactive terminal front end of perono.
//
// It renders the screen chosen by the session controller (welcome, auth,
// onboarding or home) and maps the commands typed on each screen to
// controller calls. The set of commands depends on the current screen;
// help, status and exit work everywhere.
//
// App.Run blocks until the user exits or input ends. See runREPL.
package cli
