// Package rif valida el Registro de Información Fiscal venezolano (SENIAT).
package rif

import (
	"fmt"
	"strings"
	"unicode"
)

// valor de la letra inicial del RIF para el cálculo del dígito verificador.
var letraValor = map[byte]int{'V': 1, 'E': 2, 'J': 3, 'P': 4, 'G': 5}

// pesos módulo 11 aplicados a [letra, 8 dígitos], de izquierda a derecha.
var pesos = [9]int{4, 3, 2, 7, 6, 5, 4, 3, 2}

// Normalize devuelve el RIF en formato X-12345678-9 (mayúsculas, con guiones).
// Acepta "j123456784", "J-12345678-4" o "J 12345678 4".
func Normalize(s string) (string, error) {
	letra, digitos, err := split(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%c-%s-%s", letra, digitos[:8], digitos[8:]), nil
}

// Validate verifica formato y dígito verificador.
func Validate(s string) error {
	letra, digitos, err := split(s)
	if err != nil {
		return err
	}
	esperado := ComputeDigit(letra, digitos[:8])
	if digitos[8] != esperado {
		return fmt.Errorf("rif: dígito verificador inválido: esperado %c, recibido %c", esperado, digitos[8])
	}
	return nil
}

// ComputeDigit calcula el dígito verificador para la letra y los 8 dígitos del RIF.
func ComputeDigit(letra byte, ocho string) byte {
	sum := letraValor[letra] * pesos[0]
	for i := 0; i < 8 && i < len(ocho); i++ {
		sum += int(ocho[i]-'0') * pesos[i+1]
	}
	d := 11 - sum%11
	if d > 9 {
		d = 0
	}
	return byte('0' + d)
}

func split(s string) (byte, string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, "", fmt.Errorf("rif: vacío")
	}
	letra := s[0]
	if _, ok := letraValor[letra]; !ok {
		return 0, "", fmt.Errorf("rif: tipo %q inválido (V, E, J, P, G)", letra)
	}
	var b strings.Builder
	for _, r := range s[1:] {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == ' ':
		default:
			return 0, "", fmt.Errorf("rif: carácter inválido %q", r)
		}
	}
	digitos := b.String()
	if len(digitos) != 9 {
		return 0, "", fmt.Errorf("rif: se esperan 9 dígitos, se encontraron %d", len(digitos))
	}
	return letra, digitos, nil
}
