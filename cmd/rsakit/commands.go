package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsakit"
)

type KeyOutput struct {
	N string `json:"n"`
	P string `json:"p"`
	Q string `json:"q"`
	E string `json:"e"`
	D string `json:"d"`
}

type CertificateOutput struct {
	N       string   `json:"n"`
	Factors []string `json:"factors"`
	Witness string   `json:"witness"`
}

type PrimalityOutput struct {
	N             string `json:"n"`
	ProbablePrime bool   `json:"probablePrime"`
}

type FactorOutput struct {
	N       string `json:"n"`
	Divisor string `json:"divisor"`
	Found   bool   `json:"found"`
}

func (a *app) keygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			key, err := g.GenerateKey(cmd.Context())
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
			a.logger.Info("key generated", "modulus_bits", key.N.BitLen())
			return a.write(KeyOutput{
				N: key.N.String(),
				P: key.P.String(),
				Q: key.Q.String(),
				E: key.E.String(),
				D: key.D.String(),
			})
		},
	}
}

func (a *app) encryptCommand() *cobra.Command {
	var n, e, message string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message m in [0, n) as m^e mod n",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			v, err := parseInts([]string{"n", "e", "message"}, n, e, message)
			if err != nil {
				return err
			}
			if err := rsakit.CheckMessage(v[0], v[2]); err != nil {
				return err
			}
			c, err := rsakit.Encrypt(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			return a.write(map[string]string{"ciphertext": c.String()})
		},
	}
	cmd.Flags().StringVar(&n, "n", "", "modulus")
	cmd.Flags().StringVar(&e, "e", "", "public exponent")
	cmd.Flags().StringVar(&message, "message", "", "message integer")
	markRequired(cmd, "n", "e", "message")
	return cmd
}

func (a *app) decryptCommand() *cobra.Command {
	var n, d, ciphertext string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext c as c^d mod n",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			v, err := parseInts([]string{"n", "d", "ciphertext"}, n, d, ciphertext)
			if err != nil {
				return err
			}
			m, err := rsakit.Decrypt(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			return a.write(map[string]string{"message": m.String()})
		},
	}
	cmd.Flags().StringVar(&n, "n", "", "modulus")
	cmd.Flags().StringVar(&d, "d", "", "private exponent")
	cmd.Flags().StringVar(&ciphertext, "ciphertext", "", "ciphertext integer")
	markRequired(cmd, "n", "d", "ciphertext")
	return cmd
}

func (a *app) primeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prime",
		Short: "Generate a Lucas-certified prime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			cert, err := g.ProvablePrime(cmd.Context())
			if err != nil {
				return fmt.Errorf("provable prime: %w", err)
			}
			out := CertificateOutput{
				N:       cert.N.String(),
				Factors: make([]string, 0, len(cert.Factors)),
				Witness: cert.Witness.String(),
			}
			for _, f := range cert.Factors {
				out.Factors = append(out.Factors, f.String())
			}
			return a.write(out)
		},
	}
}

func (a *app) pseudoprimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pseudoprime",
		Short: "Generate a Miller-Rabin probable prime in [2^123, 2^128]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			p, err := g.Pseudoprime(cmd.Context())
			if err != nil {
				return fmt.Errorf("pseudoprime: %w", err)
			}
			return a.write(map[string]string{"prime": p.String()})
		},
	}
}

func (a *app) isPrimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime <n>",
		Short: "Run the Miller-Rabin test on n",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			g, err := a.generator()
			if err != nil {
				return err
			}
			ok, err := g.IsProbablePrime(n)
			if err != nil {
				return err
			}
			return a.write(PrimalityOutput{N: n.String(), ProbablePrime: ok})
		},
	}
}

func (a *app) factorCommand() *cobra.Command {
	var cutoff int
	cmd := &cobra.Command{
		Use:   "factor <n>",
		Short: "Look for a divisor of n with Pollard's rho",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			d := rsakit.FactorSemiprime(n, cutoff)
			return a.write(FactorOutput{
				N:       n.String(),
				Divisor: d.String(),
				Found:   d.Cmp(big.NewInt(1)) != 0,
			})
		},
	}
	cmd.Flags().IntVar(&cutoff, "cutoff", 0, "iteration limit, 0 for ceil(ln n)")
	return cmd
}

func (a *app) modexpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modexp <n> <a> <d>",
		Short: "Compute a^d mod n",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseInts([]string{"n", "a", "d"}, args...)
			if err != nil {
				return err
			}
			r, err := rsakit.ModExp(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			return a.write(map[string]string{"result": r.String()})
		},
	}
}

func (a *app) primesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "primes <bound>",
		Short: "List the primes up to bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			bound, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid bound %q: %w", args[0], err)
			}
			return a.write(map[string][]int64{"primes": rsakit.SmallPrimes(bound)})
		},
	}
}

func (a *app) write(v any) error {
	if err := json.NewEncoder(a.cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}

// parseInt accepts decimal or 0x-prefixed hexadecimal integers.
func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer for %s: %q", name, s)
	}
	return v, nil
}

func parseInts(names []string, values ...string) ([]*big.Int, error) {
	out := make([]*big.Int, len(values))
	for i, s := range values {
		v, err := parseInt(names[i], s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
