package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root runs the read–eval–print loop. It reads one line at a time, parses
// the first token as the command, and dispatches to methods on a. The loop
// exits on EOF or when the operator types "exit" or "quit".
//
// Commands:
//
//	roles               — list roles with active users
//	users <role>        — list active users for a role
//	adduser             — register a new user (first/last/role required)
//	checkin             — log a shift for an active user
//	activate            — reactivate a deactivated user
//	deactivate          — deactivate an active user
//	export [path]       — write the hours report (default path from config)
//	save                — commit pending changes to disk
//	reset               — wipe the whole database (asks for confirmation)
//	help                — show this list
//	exit | quit         — leave the program
func (a *App) Root(ctx context.Context) error {
	if a.interactive {
		fmt.Fprintln(a.out, "Vaccine Clinic Time Keeper (type 'help' for commands)")
	}

	for {
		if a.interactive {
			fmt.Fprint(a.out, "tk> ")
		}
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return nil
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: roles, users <role>, adduser, checkin, activate, deactivate, export [path], save, reset, exit")
		case "roles":
			a.listRoles(ctx)
		case "users":
			a.listUsers(ctx, args)
		case "adduser":
			a.addUser(ctx)
		case "checkin":
			a.checkIn(ctx)
		case "activate":
			a.changeStatus(ctx, true)
		case "deactivate":
			a.changeStatus(ctx, false)
		case "export":
			a.export(ctx, args)
		case "save":
			a.save(ctx)
		case "reset":
			a.reset(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			return nil
		}
	}
}
