// Command recap finds minimum-cost crafting assignments that raise a
// character's elemental resistances to a required threshold, and — given
// an equipment list — which items to re-craft after a gear change.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/recap/assign"
	"github.com/katalvlaran/recap/catalog"
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// input limits of the command surface; the engine enforces its own.
const (
	maxArmourSlots   = 7
	maxJewelerySlots = 3
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recap",
		Short:         "minimum-cost resistance crafting solver",
		Long: "recap assigns crafting recipes to equipment slots so that the summed\n" +
			"elemental resistances reach a required threshold at minimal total cost.\n" +
			"With --equip it instead decides which equipped items to re-craft after\n" +
			"a gear change.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "file with all available recipes (CSV)")
	flags.String("equip", "", "equipment file (CSV or JSON snapshot); selects reassignment mode")
	flags.IntP("armour", "a", maxArmourSlots, "number of armour slots")
	flags.IntP("jewelery", "j", maxJewelerySlots, "number of jewelery slots")
	flags.IntSliceP("required", "r", nil, "required resistances (fire,cold,lightning[,chaos])")
	flags.IntSlice("current", nil, "current resistances (fire,cold,lightning[,chaos]); needed with --equip")
	flags.Int("workers", 0, "parallel sweep width (0 = all cores)")
	flags.Int("tile-fire", 0, "tile extent on the fire axis (0 = auto)")
	flags.Int("tile-cold", 0, "tile extent on the cold axis (0 = auto)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.Bool("verify", false, "cross-check the result against brute force (small instances only)")

	cobra.CheckErr(viper.BindPFlags(flags))
	viper.SetEnvPrefix("RECAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("recap")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	input := viper.GetString("input")
	if input == "" {
		return errors.New("specify path to a file with available recipes (--input)")
	}

	reqValues := viper.GetIntSlice("required")
	if len(reqValues) == 0 {
		return errors.New("specify required resistances (--required)")
	}
	required, err := parseResistances(reqValues)
	if err != nil {
		return fmt.Errorf("required resistances: %w", err)
	}

	recipes, err := catalog.ReadRecipes(input)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d recipe variants.\n", len(recipes))
	if len(recipes) > assign.MaxRecipes {
		return fmt.Errorf("this tool is limited to %d recipe variants, got %d", assign.MaxRecipes, len(recipes))
	}

	opts := assign.DefaultOptions()
	opts.Workers = viper.GetInt("workers")
	opts.TileFire = viper.GetInt("tile-fire")
	opts.TileCold = viper.GetInt("tile-cold")
	engine := assign.NewCPU(opts)
	log.WithFields(logrus.Fields{
		"engine":  engine.Name(),
		"workers": opts.Workers,
	}).Debug("engine configured")

	if equip := viper.GetString("equip"); equip != "" {
		return runReassignment(engine, equip, required, recipes)
	}

	return runAssignment(engine, required, recipes)
}

// runAssignment solves the plain slot-assignment mode.
func runAssignment(engine *assign.CPU, required resist.Resistance, recipes []recipe.Recipe) error {
	armour := viper.GetInt("armour")
	if armour < 0 || armour > maxArmourSlots {
		return fmt.Errorf("there can be at most %d armour slots, got %d", maxArmourSlots, armour)
	}
	jewelery := viper.GetInt("jewelery")
	if jewelery < 0 || jewelery > maxJewelerySlots {
		return fmt.Errorf("there can be at most %d jewelery slots, got %d", maxJewelerySlots, jewelery)
	}

	slots := make([]recipe.Slot, 0, armour+jewelery)
	for i := 0; i < armour; i++ {
		slots = append(slots, recipe.SlotArmour)
	}
	for i := 0; i < jewelery; i++ {
		slots = append(slots, recipe.SlotJewelery)
	}

	fmt.Printf("Armour slots: %d\nJewelery slots: %d\n", armour, jewelery)
	fmt.Printf("Required: %d%% fire, %d%% cold, %d%% lightning, %d%% chaos\n\n",
		required.Fire, required.Cold, required.Lightning, required.Chaos)

	begin := time.Now()
	result, err := engine.Solve(required, slots, recipes)
	elapsed := time.Since(begin)
	if err != nil {
		return err
	}

	printAssignment(os.Stdout, result)
	fmt.Printf("%d ms\n", elapsed.Milliseconds())

	return verifyIfAsked(required, slots, recipes, result)
}

// runReassignment solves the re-crafting mode over an equipment file.
func runReassignment(engine *assign.CPU, equipPath string, target resist.Resistance, recipes []recipe.Recipe) error {
	currentFlags := viper.GetIntSlice("current")
	if len(currentFlags) == 0 {
		return errors.New("specify current resistances (--current) together with --equip")
	}
	current, err := parseResistances(currentFlags)
	if err != nil {
		return fmt.Errorf("current resistances: %w", err)
	}

	var items []recipe.Equipment
	if filepath.Ext(equipPath) == ".json" {
		items, err = catalog.ReadEquipmentJSON(equipPath)
	} else {
		items, err = catalog.ReadEquipment(equipPath)
	}
	if err != nil {
		return err
	}
	log.WithField("items", len(items)).Debug("equipment loaded")

	fmt.Printf("Current: %d%% fire, %d%% cold, %d%% lightning, %d%% chaos\n",
		current.Fire, current.Cold, current.Lightning, current.Chaos)
	fmt.Printf("Target: %d%% fire, %d%% cold, %d%% lightning, %d%% chaos\n\n",
		target.Fire, target.Cold, target.Lightning, target.Chaos)

	begin := time.Now()
	result, err := assign.Reassign(engine, current, target, items, recipes)
	elapsed := time.Since(begin)
	if err != nil {
		return err
	}

	printAssignment(os.Stdout, result)
	fmt.Printf("%d ms\n", elapsed.Milliseconds())

	return nil
}

// verifyIfAsked cross-checks the engine against the brute-force oracle.
// Exponential; meant for debugging small instances.
func verifyIfAsked(required resist.Resistance, slots []recipe.Slot, recipes []recipe.Recipe, got assign.Assignment) error {
	if !viper.GetBool("verify") {
		return nil
	}

	log.Warn("brute-force verification requested; this is exponential in the slot count")
	oracle := assign.BruteForce(required, slots, recipes)
	if oracle.Feasible() != got.Feasible() || (oracle.Feasible() && oracle.Cost != got.Cost) {
		return fmt.Errorf("verification failed: engine cost %v, brute force cost %v", got.Cost, oracle.Cost)
	}
	log.Info("verification passed")

	return nil
}

// parseResistances normalizes 1..4 flag values into a resistance tuple,
// missing components defaulting to 0.
func parseResistances(values []int) (resist.Resistance, error) {
	if len(values) == 0 || len(values) > 4 {
		return resist.Zero(), fmt.Errorf("expected 1 to 4 values, got %d", len(values))
	}

	items := [4]resist.Item{}
	for i, v := range values {
		if v < 0 || v > 65535 {
			return resist.Zero(), fmt.Errorf("value %d out of range", v)
		}
		items[i] = resist.Item(v)
	}

	return resist.New(items[0], items[1], items[2], items[3]), nil
}
