package commands

type SmartGuardCommand struct {
	Audit   AuditCommand   `command:"audit" description:"Audit password strength interactively or for each argument"`
	Version VersionCommand `command:"version" description:"Displays smartguard version" alias:"V"`
}

var SmartGuard SmartGuardCommand
