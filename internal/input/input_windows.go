//go:build windows

package input

import "golang.org/x/sys/windows"

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// Virtual-key codes sampled by the locker
const (
	vkControl = 0x11 // VK_CONTROL, either side
	vkLMenu   = 0xA4 // VK_LMENU, left Alt
	vkF11     = 0x7A // VK_F11
)

type asyncSampler struct{}

func newSampler() Sampler {
	return asyncSampler{}
}

func (asyncSampler) Sample() State {
	return State{
		Release: keyDown(vkControl) || keyDown(vkLMenu),
		Switch:  keyDown(vkF11),
	}
}

// keyDown reports whether the key is currently held. GetAsyncKeyState
// sets the most significant bit while the key is down.
func keyDown(vk int) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return ret&0x8000 != 0
}
