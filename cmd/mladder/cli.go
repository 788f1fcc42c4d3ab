package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type CommandArgs struct {
	commandName string
	params      map[string]string
}

func NewCommandArgs(args []string) *CommandArgs {
	var cmdName = ""
	var flags = make(map[string]string)
	for i := 1; i < len(args); i++ {
		var arg = args[i]
		if strings.HasPrefix(arg, "-") {
			if i < len(args)-1 {
				var k = strings.TrimPrefix(arg, "-")
				var v = args[i+1]
				flags[k] = v
				i++
			}
		} else if cmdName == "" {
			cmdName = arg
		}
	}
	return &CommandArgs{
		commandName: cmdName,
		params:      flags,
	}
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	return val
}

func (ca *CommandArgs) GetInt(name string, defaultVal int) (int, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("-%s: %w", name, err)
	}
	return v, nil
}

func (ca *CommandArgs) GetFloat(name string, defaultVal float64) (float64, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("-%s: %w", name, err)
	}
	return v, nil
}

// GetInts parses a comma-separated list such as "2,2,1".
func (ca *CommandArgs) GetInts(name string, defaultVal []int) ([]int, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	var result []int
	for _, field := range strings.Split(val, ",") {
		var v, err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", name, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func (ca *CommandArgs) GetFloats(name string) ([]float64, error) {
	var val, ok = ca.params[name]
	if !ok {
		return nil, fmt.Errorf("-%s is required", name)
	}
	var result []float64
	for _, field := range strings.Split(val, ",") {
		var v, err = strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", name, err)
		}
		result = append(result, v)
	}
	return result, nil
}

type CommandHandler struct {
	items map[string]func() error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func() error),
	}
}

func (ch *CommandHandler) Add(name string, handler func() error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Names() []string {
	var result = make([]string, 0, len(ch.items))
	for name := range ch.items {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (ch *CommandHandler) Execute(commandName string) error {
	handler, found := ch.items[commandName]
	if !found {
		return fmt.Errorf("command not found %q, available: %v", commandName, ch.Names())
	}
	return handler()
}
