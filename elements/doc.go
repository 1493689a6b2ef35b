// seehuhn.de/go/schematic - a library for drawing communications schematics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package elements provides the catalog of optical and RF schematic
// elements: bends, couplers, modulators, detectors and bench instruments.
//
// Each element is a small parameter struct implementing
// [seehuhn.de/go/schematic.Element].  The zero value of every struct is
// usable and describes the element with its default dimensions.  Element
// geometry is given in schematic units in a local frame; most elements
// place the origin at the middle of their west edge so that chaining
// left to right via the drop point works without further adjustment.
//
// Elements fall into three groups:
//
//   - passive optics: [Bend90], [Bend180], [Terminator], [BraggGrating],
//     [Mux], [Circulator], [BeamSplitter], [DotCoupler], [RingCoupler],
//     [FiberSpool], [PolarizationController], [VariableAttenuator],
//     [Filter]
//   - electro-optics: [PhaseModulator], [MachZehnder], [IQModulator],
//     [Photodiode], [LaserDiode]
//   - bench instruments: [SpectrumAnalyzer], [WaveformGenerator],
//     [Oscilloscope], [PowerMeter]
//
// The instruments decorate their screens with plotted traces from the
// [seehuhn.de/go/schematic/waveform] package.  Traces with a noise
// component are generated from the element's Seed field, so that equal
// parameters always give equal geometry.
package elements
