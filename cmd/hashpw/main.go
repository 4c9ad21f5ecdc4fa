// Command hashpw prints the bcrypt hash to use as ADMIN_PASSWORD_HASH.
//
//	hashpw -cost 12 'the staff password'
package main

import (
    "flag"
    "fmt"
    "os"

    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/sakila-rental-api/internal/utils"
)

func main() {
    cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
    flag.Parse()
    if flag.NArg() != 1 {
        fmt.Fprintln(os.Stderr, "usage: hashpw [-cost n] <password>")
        os.Exit(2)
    }
    hash, err := utils.HashPassword(flag.Arg(0), *cost)
    if err != nil {
        fmt.Fprintln(os.Stderr, "hashpw:", err)
        os.Exit(1)
    }
    fmt.Println(hash)
}
