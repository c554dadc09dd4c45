package model

import (
	"testing"
	"time"
)

func TestContextValidateInstant(t *testing.T) {
	c := Context{
		ID:        "I1",
		Entity:    "0000123456",
		Period:    PeriodInstant,
		PeriodEnd: NewDate(2024, time.December, 31),
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	start := NewDate(2024, time.January, 1)
	c.PeriodStart = &start
	if err := c.Validate(); err == nil {
		t.Error("instant context with a start date should fail validation")
	}
}

func TestContextValidateDuration(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	c := Context{
		ID:          "FY2024",
		Entity:      "0000123456",
		Period:      PeriodDuration,
		PeriodStart: &start,
		PeriodEnd:   NewDate(2024, time.December, 31),
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	c.PeriodStart = nil
	if err := c.Validate(); err == nil {
		t.Error("duration context without a start date should fail validation")
	}

	late := NewDate(2025, time.June, 1)
	c.PeriodStart = &late
	if err := c.Validate(); err == nil {
		t.Error("duration context with start after end should fail validation")
	}
}

func TestContextIsInstant(t *testing.T) {
	if !(Context{Period: PeriodInstant}).IsInstant() {
		t.Error("instant context should report IsInstant")
	}
	if (Context{Period: PeriodDuration}).IsInstant() {
		t.Error("duration context should not report IsInstant")
	}
}
