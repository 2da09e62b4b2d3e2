package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"cardsim/internal/models"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Cliente de terminal. CARDSIM_API aponta pro servidor

func main() {
	color.NoColor = false

	baseURL := os.Getenv("CARDSIM_API")
	if baseURL == "" {
		baseURL = "http://localhost:7700"
	}

	c := newAPIClient(baseURL)
	color.Green("Using cardsim API at %s", baseURL)

	showMenu(bufio.NewReader(os.Stdin), c)
}

func showMenu(reader *bufio.Reader, c *apiClient) {
	ctx := context.Background()

	for {
		fmt.Println("--- Menu ---")
		fmt.Println("1. List cards")
		fmt.Println("2. Inspect card at level")
		fmt.Println("3. Create instance")
		fmt.Println("4. Show instance")
		fmt.Println("5. Fork instance")
		fmt.Println("6. Reset instance")
		fmt.Println("7. Remove ability")
		fmt.Println("8. Set buff")
		fmt.Println("9. Set debuff")
		fmt.Println("10. Delete instance")
		fmt.Println("0. Quit")

		choice := prompt(reader, "Option: ")
		clearScreen()

		var (
			view models.CardView
			err  error
		)
		switch choice {
		case "1":
			var defs []models.CardDefinition
			defs, err = c.Cards(ctx)
			if err == nil {
				printCards(defs)
			}
			continue
		case "2":
			view, err = c.Inspect(ctx, models.CardID(promptInt(reader, "Card id: ")), promptInt(reader, "Level: "))
		case "3":
			view, err = c.Create(ctx,
				models.CardID(promptInt(reader, "Card id: ")),
				promptInt(reader, "Level: "),
				models.TeamNumber(promptInt(reader, "Team (0, 1 or 2): ")),
			)
		case "4":
			view, err = c.Instance(ctx, promptUUID(reader))
		case "5":
			view, err = c.Fork(ctx, promptUUID(reader))
		case "6":
			view, err = c.Reset(ctx, promptUUID(reader))
		case "7":
			view, err = c.RemoveAbility(ctx, promptUUID(reader), models.Ability(prompt(reader, "Ability: ")))
		case "8", "9":
			uid := promptUUID(reader)
			ability := models.Ability(prompt(reader, "Ability: "))
			view, err = c.SetModifier(ctx, uid, ability, promptInt(reader, "Value: "), choice == "9")
		case "10":
			if err = c.Delete(ctx, promptUUID(reader)); err == nil {
				color.Green("Instance deleted")
			}
			report(err)
			continue
		case "0":
			return
		default:
			color.Red("Invalid option")
			continue
		}

		if report(err) {
			printCard(view)
		}
	}
}

// imprime o erro, true se deu certo
func report(err error) bool {
	if err != nil {
		color.Red("Error: %v", err)
		return false
	}
	return true
}

func printCards(defs []models.CardDefinition) {
	for _, def := range defs {
		limit, bounded := def.MaxLevel()
		levels := "any"
		if bounded {
			levels = strconv.Itoa(limit)
		}
		fmt.Printf("%3d) %-24s %-8s %-6s rarity %d, levels %s\n",
			def.ID, def.Name, def.Type, def.Color, def.Rarity, levels)
	}
}

func printCard(view models.CardView) {
	color.Cyan("%s (card %d, level %d)", view.Name, view.CardID, view.Level)
	if view.InstanceID != uuid.Nil {
		fmt.Printf(" Instance: %s\n", view.InstanceID)
	}
	fmt.Printf(" Team: %s\n", view.Team)
	s := view.Stats
	fmt.Printf(" Speed %d  Armor %d/%d  Health %d/%d  Magic %d  Melee %d  Ranged %d  Mana %d\n",
		s.Speed, s.Armor, view.StartingArmor, s.Health, view.StartingHealth, s.Magic, s.Melee, s.Ranged, s.Mana)
	fmt.Printf(" Abilities: %v\n", view.Abilities)
	if len(view.Buffs) > 0 {
		fmt.Printf(" Buffs: %v\n", view.Buffs)
	}
	if len(view.Debuffs) > 0 {
		fmt.Printf(" Debuffs: %v\n", view.Debuffs)
	}
	fmt.Println(strings.Repeat("-", 40))
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		// stdin fechou
		os.Exit(0)
	}
	return strings.TrimSpace(input)
}

func promptInt(reader *bufio.Reader, label string) int {
	for {
		n, err := strconv.Atoi(prompt(reader, label))
		if err == nil {
			return n
		}
		color.Red("Not a number")
	}
}

func promptUUID(reader *bufio.Reader) uuid.UUID {
	for {
		uid, err := uuid.Parse(prompt(reader, "Instance id: "))
		if err == nil {
			return uid
		}
		color.Red("Not an instance id")
	}
}

// comando de limpar tela por sistema
var clearCommands = map[string][]string{
	"linux":   {"clear"},
	"darwin":  {"clear"},
	"windows": {"cmd", "/c", "cls"},
}

func clearScreen() {
	clearScreenOn(runtime.GOOS, os.Stdout)
}

// se o comando falhar ou nao existir, empurra a tela com linhas em branco
func clearScreenOn(goos string, out io.Writer) {
	if args, ok := clearCommands[goos]; ok {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdout = out
		if err := cmd.Run(); err == nil {
			return
		}
	}
	fmt.Fprint(out, strings.Repeat("\n", 50))
}
