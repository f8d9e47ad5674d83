package process

// ToolConfig describes an allow-listed external executable.
type ToolConfig struct {
	Name        string
	Command     string
	Args        []string
	Environment map[string]string
}

// Registry builds tool configs from a name to command mapping.
// env is added to every tool's environment on top of the inherited one.
func Registry(commands map[string]string, env map[string]string) map[string]ToolConfig {
	tools := make(map[string]ToolConfig, len(commands))
	for name, command := range commands {
		if command == "" {
			continue
		}
		tools[name] = ToolConfig{Name: name, Command: command, Environment: env}
	}
	return tools
}
