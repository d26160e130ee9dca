package tron

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

// ABI word size for triggerconstantcontract parameters: 32 bytes, 64 hex chars.
const WordHexLen = 64

var ErrNegativeAmount = errors.New("amount must not be negative")

func SunToDecimal(amount *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(amount, -6)
}

func DecimalToSun(amount decimal.Decimal) *big.Int {
	sun := amount.Mul(decimal.New(1, 6))
	result := new(big.Int)
	result.SetString(sun.String(), 10)
	return result
}

func BigIntToDecimal(amount *big.Int, decimals int) decimal.Decimal {
	return decimal.NewFromBigInt(amount, int32(-decimals))
}

func DecimalToBigInt(amount decimal.Decimal, decimals int) *big.Int {
	bi := amount.Mul(decimal.New(1, int32(decimals)))
	result := new(big.Int)
	result.SetString(bi.String(), 10)
	return result
}

func IsValidTronAddress(addr string) bool {
	_, err := address.Base58ToAddress(addr)
	return err == nil
}

// AccountHex returns the 20-byte account identifier of a base58Check
// address as 40 hex characters, version prefix stripped.
func AccountHex(addr string) (string, error) {
	a, err := address.Base58ToAddress(addr)
	if err != nil {
		return "", fmt.Errorf("invalid tron address %s: %w", addr, err)
	}
	return hex.EncodeToString(a.Bytes()[1:]), nil
}

// EncodeAddressParam packs a base58Check address into one ABI word.
func EncodeAddressParam(addr string) (string, error) {
	a, err := address.Base58ToAddress(addr)
	if err != nil {
		return "", fmt.Errorf("invalid tron address %s: %w", addr, err)
	}
	return hex.EncodeToString(common.LeftPadBytes(a.Bytes()[1:], 32)), nil
}

// EncodeAmountParam packs a token amount, scaled to its smallest unit
// by decimals, into one ABI word.
func EncodeAmountParam(amount decimal.Decimal, decimals int) (string, error) {
	units := DecimalToBigInt(amount, decimals)
	if units.Sign() < 0 {
		return "", ErrNegativeAmount
	}
	if units.BitLen() > 256 {
		return "", fmt.Errorf("amount %s does not fit in uint256", amount)
	}
	return hex.EncodeToString(common.LeftPadBytes(units.Bytes(), 32)), nil
}

// TransferParams builds the parameter blob for transfer(address,uint256).
func TransferParams(to string, amount decimal.Decimal, decimals int) (string, error) {
	addrParam, err := EncodeAddressParam(to)
	if err != nil {
		return "", err
	}
	amountParam, err := EncodeAmountParam(amount, decimals)
	if err != nil {
		return "", err
	}
	return addrParam + amountParam, nil
}

// BalanceOfParams builds the parameter blob for balanceOf(address).
func BalanceOfParams(holder string) (string, error) {
	return EncodeAddressParam(holder)
}

// DecodeConstantWord parses one 32-byte hex word returned in constant_result.
func DecodeConstantWord(word string) (*big.Int, error) {
	word = strings.TrimPrefix(word, "0x")
	if word == "" {
		return nil, errors.New("empty constant result word")
	}
	i, ok := new(big.Int).SetString(word, 16)
	if !ok {
		return nil, fmt.Errorf("malformed constant result word: %q", word)
	}
	return i, nil
}

// EnergyFeeTRX converts an energy amount to a TRX fee at priceSun SUN
// per energy unit.
func EnergyFeeTRX(energy, priceSun int64) decimal.Decimal {
	sun := new(big.Int).Mul(big.NewInt(energy), big.NewInt(priceSun))
	return SunToDecimal(sun)
}

func S256(s []byte) []byte {
	h := sha256.New()
	h.Write(s)
	return h.Sum(nil)
}

func HexToBase58(hexStr string) (string, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	if hexStr == "" {
		return "", errors.New("empty hex address")
	}

	if !strings.HasPrefix(hexStr, "41") {
		hexStr = "41" + hexStr
	}

	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}

	checksum := S256(S256(raw))[:4]
	return base58.Encode(append(raw, checksum...)), nil
}

func Base58ToHex(addr string) (string, error) {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return "", err
	}
	if len(decoded) <= 4 {
		return "", fmt.Errorf("address %s too short", addr)
	}
	return hex.EncodeToString(decoded[:len(decoded)-4]), nil
}
